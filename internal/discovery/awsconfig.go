package discovery

import (
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go/logging"

	"github.com/justapithecus/scout/scout"
)

// ClientParams are the resolver outputs needed to build an EC2 client.
type ClientParams struct {
	// Credentials is the provider from conn.Resolver.BuildCredentials.
	Credentials aws.CredentialsProvider

	// Client is the configuration from conn.Resolver.BuildConfiguration.
	Client scout.ClientConfig

	// Region is the canonical region, if known. May be empty when
	// Endpoint is set.
	Region string

	// Endpoint is the host from conn.Resolver.FindEndpoint. Empty means
	// the SDK picks the endpoint for Region.
	Endpoint string

	// Logger is handed to the SDK. Optional.
	Logger logging.Logger
}

// NewAWSConfig assembles an aws.Config from resolved connection parameters.
//
// The protocol decides the endpoint scheme, and the proxy options configure
// the HTTP transport; the transport implementation itself stays the SDK's.
// Client.SignerOverride is not interpreted here — callers installing custom
// signing read it from Client directly.
func NewAWSConfig(p ClientParams) aws.Config {
	cfg := aws.Config{
		Region:      p.Region,
		Credentials: p.Credentials,
		Logger:      p.Logger,
	}

	client := awshttp.NewBuildableClient()
	if p.Client.ProxyHost != "" {
		proxy := &url.URL{Scheme: "http", Host: p.Client.ProxyHost}
		if p.Client.ProxyPort != scout.NoProxyPort {
			proxy.Host = net.JoinHostPort(p.Client.ProxyHost, strconv.Itoa(p.Client.ProxyPort))
		}
		if p.Client.ProxyUsername != "" {
			proxy.User = url.UserPassword(p.Client.ProxyUsername, p.Client.ProxyPassword)
		}
		client = client.WithTransportOptions(func(tr *http.Transport) {
			tr.Proxy = http.ProxyURL(proxy)
		})
	}
	cfg.HTTPClient = client

	if p.Endpoint != "" {
		cfg.BaseEndpoint = aws.String(string(p.Client.Protocol) + "://" + p.Endpoint)
	}
	return cfg
}
