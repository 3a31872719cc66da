// Package conn resolves effective EC2 connection parameters — credentials,
// client configuration, and a regional endpoint — from a settings snapshot.
//
// The three resolution operations are independent of one another and may run
// in any order; each is a deterministic function of the snapshot it is given.
// A Resolver holds no per-call state and is safe for concurrent use.
package conn

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go/logging"

	"github.com/justapithecus/scout/scout"
)

// Config carries the Resolver's collaborators. All fields are optional.
type Config struct {
	// Logger receives debug and warning output. Defaults to a no-op
	// logger.
	Logger logging.Logger

	// DefaultCredentials is returned when settings bind no complete
	// key/secret pair. Defaults to the SDK default provider chain
	// (environment, shared config and credentials files, SSO, IMDS),
	// consulted in the SDK's own order.
	DefaultCredentials aws.CredentialsProvider
}

// Resolver derives connection parameters for the EC2 API.
type Resolver struct {
	logger       logging.Logger
	defaultChain aws.CredentialsProvider
}

// NewResolver creates a Resolver from cfg, filling in defaults for unset
// fields.
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		logger:       cfg.Logger,
		defaultChain: cfg.DefaultCredentials,
	}
	if r.logger == nil {
		r.logger = logging.Nop{}
	}
	if r.defaultChain == nil {
		r.defaultChain = NewDefaultChain()
	}
	return r
}

// BuildCredentials returns the credentials provider for the EC2 client.
//
// When both the key and the secret resolve through the setting tiers, the
// result is a static provider yielding exactly that pair. Otherwise —
// including when only one of the two is bound — the default chain is
// returned unchanged; a lone key or secret is never turned into partial
// credentials.
func (r *Resolver) BuildCredentials(s scout.Settings) aws.CredentialsProvider {
	key, haveKey := scout.OptionKey.GetString(s)
	secret, haveSecret := scout.OptionSecret.GetString(s)

	if !haveKey || !haveSecret {
		r.logger.Logf(logging.Debug, "no key/secret pair in settings, using the default credentials chain")
		return r.defaultChain
	}

	r.logger.Logf(logging.Debug, "using key/secret credentials from settings")
	return credentials.NewStaticCredentialsProvider(key, secret, "")
}

// BuildConfiguration resolves the client configuration. Every option
// resolves independently between the tiers and has a defined default, so
// this never fails.
func (r *Resolver) BuildConfiguration(s scout.Settings) scout.ClientConfig {
	cfg := scout.ClientConfig{
		Protocol:  scout.ProtocolHTTPS,
		ProxyPort: scout.NoProxyPort,
	}

	if v, ok := scout.OptionProtocol.GetString(s); ok {
		switch strings.ToLower(v) {
		case "http":
			cfg.Protocol = scout.ProtocolHTTP
		case "https":
			cfg.Protocol = scout.ProtocolHTTPS
		default:
			r.logger.Logf(logging.Warn, "unknown protocol [%s], keeping [%s]", v, cfg.Protocol)
		}
	}

	cfg.ProxyHost, _ = scout.OptionProxyHost.GetString(s)
	if v, ok := scout.OptionProxyPort.GetInt(s); ok {
		cfg.ProxyPort = v
	}
	cfg.ProxyUsername, _ = scout.OptionProxyUsername.GetString(s)
	cfg.ProxyPassword, _ = scout.OptionProxyPassword.GetString(s)
	cfg.SignerOverride, _ = scout.OptionSigner.GetString(s)

	// ResponseMetadataCacheSize stays zero no matter what the settings say.
	return cfg
}

// FindEndpoint resolves the EC2 API endpoint host, or "" when settings bind
// neither an endpoint nor a region and the SDK should choose.
//
// An explicit endpoint option wins outright and is returned verbatim. A
// region option is lowercased, resolved through the alias table, and turned
// into the canonical host for its canonical region. A region outside the
// table fails with *scout.InvalidRegionError.
func (r *Resolver) FindEndpoint(s scout.Settings) (string, error) {
	if endpoint, ok := scout.OptionEndpoint.GetString(s); ok {
		r.logger.Logf(logging.Debug, "using explicit endpoint [%s]", endpoint)
		return endpoint, nil
	}

	region, ok := scout.OptionRegion.GetString(s)
	if !ok {
		return "", nil
	}

	region = strings.ToLower(region)
	canonical, ok := CanonicalRegion(region)
	if !ok {
		return "", &scout.InvalidRegionError{Region: region}
	}

	endpoint := EndpointForRegion(canonical)
	r.logger.Logf(logging.Debug, "using endpoint [%s] derived from region [%s]", endpoint, region)
	return endpoint, nil
}
