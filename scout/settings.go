// Package scout resolves the connection parameters needed to talk to the
// AWS EC2 API — credentials, client configuration, and a regional endpoint —
// from a two-tier settings snapshot.
//
// Settings live at two precedence tiers with parallel key names: a generic
// tier scoped to the AWS provider as a whole (cloud.aws.*) and a specific
// tier scoped to EC2 (cloud.aws.ec2.*). The specific tier overrides the
// generic one, option by option. When neither tier binds a value, resolution
// falls back to the SDK defaults (the default credentials chain, the SDK's
// own endpoint selection).
package scout

// Settings is a read-only, typed view over a flat configuration snapshot.
// Keys are namespaced by dotted prefixes only; there is no nested structure.
//
// Absence is a normal result, reported through the second return value,
// never through an error. Implementations must be safe for concurrent
// readers.
type Settings interface {
	// GetString returns the string bound to key, or false if key is unset
	// or bound to a non-string value.
	GetString(key string) (string, bool)

	// GetInt returns the integer bound to key, or false if key is unset
	// or bound to a non-integer value.
	GetInt(key string) (int, bool)
}

// KeyLister is an optional interface that Settings implementations can
// provide to support enumerating keys under a prefix. Components that accept
// wildcard option names (for example tag filters) detect it by assertion;
// a Settings without it simply yields no wildcard matches.
type KeyLister interface {
	// KeysWithPrefix returns all bound keys starting with prefix,
	// in lexical order.
	KeysWithPrefix(prefix string) []string
}

// Setting key namespaces.
const (
	// PrefixCloudAWS scopes a setting to the AWS provider as a whole.
	PrefixCloudAWS = "cloud.aws."

	// PrefixCloudAWSEC2 scopes a setting to the EC2 service, overriding
	// the same option under PrefixCloudAWS.
	PrefixCloudAWSEC2 = "cloud.aws.ec2."

	// PrefixDiscoveryEC2 scopes the host-discovery options. Discovery
	// options have a single tier; nothing overrides them.
	PrefixDiscoveryEC2 = "discovery.ec2."
)

// Option is one connection option's pair of parallel setting keys at the two
// precedence tiers. Each option resolves independently of every other; no
// option's outcome depends on another option's value.
type Option struct {
	Generic  string
	Specific string
}

func option(name string) Option {
	return Option{
		Generic:  PrefixCloudAWS + name,
		Specific: PrefixCloudAWSEC2 + name,
	}
}

// The connection options understood by the resolvers.
var (
	OptionKey           = option("key")
	OptionSecret        = option("secret")
	OptionProtocol      = option("protocol")
	OptionProxyHost     = option("proxy.host")
	OptionProxyPort     = option("proxy.port")
	OptionProxyUsername = option("proxy.username")
	OptionProxyPassword = option("proxy.password")
	OptionSigner        = option("signer")
	OptionRegion        = option("region")
	OptionEndpoint      = option("endpoint")
)

// GetString resolves the option against s: the specific-tier value if bound,
// else the generic-tier value, else absent.
func (o Option) GetString(s Settings) (string, bool) {
	if v, ok := s.GetString(o.Specific); ok {
		return v, true
	}
	return s.GetString(o.Generic)
}

// GetInt resolves the option like GetString, for integer-typed options.
func (o Option) GetInt(s Settings) (int, bool) {
	if v, ok := s.GetInt(o.Specific); ok {
		return v, true
	}
	return s.GetInt(o.Generic)
}
