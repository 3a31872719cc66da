package conn

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// DefaultChain yields credentials from the SDK default sources — environment
// variables, shared config and credentials files, SSO, and instance metadata
// — in the SDK's own precedence order. The chain itself belongs to the SDK;
// this type only defers loading it until credentials are actually needed, so
// that resolution over explicit settings touches no environment or metadata.
type DefaultChain struct{}

// NewDefaultChain creates the SDK-backed default credentials delegate.
func NewDefaultChain() *DefaultChain {
	return &DefaultChain{}
}

// Retrieve loads the SDK default configuration and returns whatever
// credentials its provider chain resolves.
func (p *DefaultChain) Retrieve(ctx context.Context) (aws.Credentials, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("load default aws config: %w", err)
	}
	return cfg.Credentials.Retrieve(ctx)
}

var _ aws.CredentialsProvider = (*DefaultChain)(nil)
