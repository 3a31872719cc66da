package scout

// Protocol is the scheme used to reach the EC2 API endpoint.
type Protocol string

// Supported protocols. The zero value is not valid; BuildConfiguration
// always emits one of these.
const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// NoProxyPort is the ProxyPort value meaning no proxy port was configured.
const NoProxyPort = -1

// ClientConfig is the resolved HTTP client configuration for the EC2 API.
//
// Every field resolves independently between the two setting tiers; there is
// no cross-field validation (a proxy username may be set without a proxy
// host). Absent options keep their documented defaults, so building a
// ClientConfig never fails.
type ClientConfig struct {
	// Protocol defaults to ProtocolHTTPS.
	Protocol Protocol

	// ProxyHost is empty when no proxy is configured.
	ProxyHost string

	// ProxyPort is NoProxyPort when unset. The value is passed through
	// as configured, with no bounds check.
	ProxyPort int

	ProxyUsername string
	ProxyPassword string

	// SignerOverride names a non-default request signer, empty for the
	// SDK default. It is carried through for callers that install custom
	// signing; nothing in this module interprets it.
	SignerOverride string

	// ResponseMetadataCacheSize is always zero: the discovery workload
	// never revisits response metadata, so the cache is disabled outright
	// rather than being settings-driven.
	ResponseMetadataCacheSize int
}
