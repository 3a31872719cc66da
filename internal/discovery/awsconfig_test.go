package discovery

import (
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"

	"github.com/justapithecus/scout/scout"
)

func TestNewAWSConfig_Defaults(t *testing.T) {
	cfg := NewAWSConfig(ClientParams{
		Client: scout.ClientConfig{Protocol: scout.ProtocolHTTPS, ProxyPort: scout.NoProxyPort},
		Region: "eu-west-1",
	})

	if cfg.Region != "eu-west-1" {
		t.Errorf("region = %q, want %q", cfg.Region, "eu-west-1")
	}
	if cfg.BaseEndpoint != nil {
		t.Errorf("expected SDK-chosen endpoint, got %q", *cfg.BaseEndpoint)
	}
	if cfg.HTTPClient == nil {
		t.Error("expected an HTTP client")
	}
}

func TestNewAWSConfig_ExplicitEndpoint(t *testing.T) {
	cfg := NewAWSConfig(ClientParams{
		Client:   scout.ClientConfig{Protocol: scout.ProtocolHTTP, ProxyPort: scout.NoProxyPort},
		Endpoint: "ec2.eu-west-1.amazonaws.com",
	})

	if got := aws.ToString(cfg.BaseEndpoint); got != "http://ec2.eu-west-1.amazonaws.com" {
		t.Errorf("base endpoint = %q, want %q", got, "http://ec2.eu-west-1.amazonaws.com")
	}
}

func TestNewAWSConfig_Proxy(t *testing.T) {
	cfg := NewAWSConfig(ClientParams{
		Client: scout.ClientConfig{
			Protocol:      scout.ProtocolHTTPS,
			ProxyHost:     "proxy.internal",
			ProxyPort:     8080,
			ProxyUsername: "user",
			ProxyPassword: "pass",
		},
	})

	client, ok := cfg.HTTPClient.(*awshttp.BuildableClient)
	if !ok {
		t.Fatalf("unexpected HTTP client type %T", cfg.HTTPClient)
	}
	proxyFn := client.GetTransport().Proxy
	if proxyFn == nil {
		t.Fatal("expected a proxy function on the transport")
	}

	req, _ := http.NewRequest(http.MethodGet, "https://ec2.eu-west-1.amazonaws.com", nil)
	proxyURL, err := proxyFn(req)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if proxyURL.Host != "proxy.internal:8080" {
		t.Errorf("proxy host = %q, want %q", proxyURL.Host, "proxy.internal:8080")
	}
	if proxyURL.User.Username() != "user" {
		t.Errorf("proxy user = %q, want %q", proxyURL.User.Username(), "user")
	}
}

func TestNewAWSConfig_ProxyWithoutPort(t *testing.T) {
	cfg := NewAWSConfig(ClientParams{
		Client: scout.ClientConfig{
			Protocol:  scout.ProtocolHTTPS,
			ProxyHost: "proxy.internal",
			ProxyPort: scout.NoProxyPort,
		},
	})

	client := cfg.HTTPClient.(*awshttp.BuildableClient)
	req, _ := http.NewRequest(http.MethodGet, "https://ec2.eu-west-1.amazonaws.com", nil)
	proxyURL, err := client.GetTransport().Proxy(req)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if proxyURL.Host != "proxy.internal" {
		t.Errorf("proxy host = %q, want %q", proxyURL.Host, "proxy.internal")
	}
}
