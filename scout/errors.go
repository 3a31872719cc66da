package scout

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion indicates a region setting outside the known region set.
var ErrInvalidRegion = errors.New("invalid region")

// InvalidRegionError reports a configured region for which no endpoint is
// known. It is the only error endpoint resolution can return; a missing
// region is a normal "use the SDK default" outcome, not an error.
type InvalidRegionError struct {
	Region string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("No automatic endpoint could be derived from region [%s]", e.Region)
}

func (e *InvalidRegionError) Unwrap() error {
	return ErrInvalidRegion
}
