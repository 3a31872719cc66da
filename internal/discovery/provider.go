// Package discovery turns running EC2 instances into peer addresses, using
// the connection parameters resolved by the conn package. It is the consumer
// the resolvers exist for: the settings pick which instances count as peers
// and which of their addresses is published.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go/logging"

	"github.com/justapithecus/scout/scout"
)

// Discovery option keys. These have a single tier; nothing overrides them.
const (
	hostTypeKey = scout.PrefixDiscoveryEC2 + "host_type"
	groupsKey   = scout.PrefixDiscoveryEC2 + "groups"
	anyGroupKey = scout.PrefixDiscoveryEC2 + "any_group"
	tagPrefix   = scout.PrefixDiscoveryEC2 + "tag."
)

// Host types: which instance field becomes the published address.
const (
	HostTypePrivateIP  = "private_ip"
	HostTypePublicIP   = "public_ip"
	HostTypePrivateDNS = "private_dns"
	HostTypePublicDNS  = "public_dns"
)

// DescribeInstancesAPI is the slice of the EC2 client the provider uses.
type DescribeInstancesAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// Config carries the Provider's collaborators.
type Config struct {
	// Client performs the DescribeInstances calls. Required.
	Client DescribeInstancesAPI

	// Logger receives debug output. Defaults to a no-op logger.
	Logger logging.Logger
}

// Provider lists running EC2 instances and publishes one address per
// instance, selected by the discovery settings:
//
//   - discovery.ec2.host_type: private_ip (default), public_ip,
//     private_dns, or public_dns.
//   - discovery.ec2.groups: comma-separated security group names or IDs an
//     instance must belong to.
//   - discovery.ec2.any_group: when "true" (default) membership in any
//     listed group qualifies; when "false" the instance must belong to all
//     of them.
//   - discovery.ec2.tag.<name>: server-side tag filters.
//
// Instances that are not running never appear; instances missing the
// selected address field are skipped.
type Provider struct {
	client DescribeInstancesAPI
	logger logging.Logger

	hostType string
	groups   []string
	anyGroup bool
	tags     map[string]string
}

// NewProvider creates a Provider from the discovery settings in s.
func NewProvider(s scout.Settings, cfg Config) (*Provider, error) {
	if cfg.Client == nil {
		return nil, errors.New("discovery: Config.Client is required")
	}

	p := &Provider{
		client:   cfg.Client,
		logger:   cfg.Logger,
		hostType: HostTypePrivateIP,
		anyGroup: true,
		tags:     make(map[string]string),
	}
	if p.logger == nil {
		p.logger = logging.Nop{}
	}

	if v, ok := s.GetString(hostTypeKey); ok {
		switch v {
		case HostTypePrivateIP, HostTypePublicIP, HostTypePrivateDNS, HostTypePublicDNS:
			p.hostType = v
		default:
			return nil, fmt.Errorf("discovery: unknown %s [%s]", hostTypeKey, v)
		}
	}

	if v, ok := s.GetString(groupsKey); ok {
		for _, g := range strings.Split(v, ",") {
			if g = strings.TrimSpace(g); g != "" {
				p.groups = append(p.groups, g)
			}
		}
	}

	if v, ok := s.GetString(anyGroupKey); ok {
		anyGroup, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("discovery: %s must be a boolean, got [%s]", anyGroupKey, v)
		}
		p.anyGroup = anyGroup
	}

	// Tag filters are wildcard options; they need key enumeration, which
	// not every Settings offers.
	if lister, ok := s.(scout.KeyLister); ok {
		for _, key := range lister.KeysWithPrefix(tagPrefix) {
			name := strings.TrimPrefix(key, tagPrefix)
			if name == "" {
				continue
			}
			if v, ok := s.GetString(key); ok {
				p.tags[name] = v
			}
		}
	}

	return p, nil
}

// Addresses fetches the current peer addresses. Ordering follows the order
// instances come back from the API; no retry is attempted on failure.
func (p *Provider) Addresses(ctx context.Context) ([]string, error) {
	out, err := p.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: p.filters(),
	})
	if err != nil {
		return nil, fmt.Errorf("describe instances: %w", err)
	}

	var addrs []string
	for _, reservation := range out.Reservations {
		for _, inst := range reservation.Instances {
			if !p.matchesGroups(inst) {
				p.logger.Logf(logging.Debug, "instance [%s] filtered out by security groups", aws.ToString(inst.InstanceId))
				continue
			}
			addr := p.address(inst)
			if addr == "" {
				p.logger.Logf(logging.Debug, "instance [%s] has no %s address", aws.ToString(inst.InstanceId), p.hostType)
				continue
			}
			addrs = append(addrs, addr)
		}
	}

	p.logger.Logf(logging.Debug, "discovered %d peer address(es)", len(addrs))
	return addrs, nil
}

// filters builds the server-side filters: only running instances, narrowed
// by any configured tag filters. Group membership is checked client-side so
// the all-groups mode can be enforced exactly.
func (p *Provider) filters() []types.Filter {
	filters := []types.Filter{{
		Name:   aws.String("instance-state-name"),
		Values: []string{string(types.InstanceStateNameRunning)},
	}}

	names := make([]string, 0, len(p.tags))
	for name := range p.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		filters = append(filters, types.Filter{
			Name:   aws.String("tag:" + name),
			Values: []string{p.tags[name]},
		})
	}
	return filters
}

func (p *Provider) matchesGroups(inst types.Instance) bool {
	if len(p.groups) == 0 {
		return true
	}

	member := make(map[string]bool, len(inst.SecurityGroups))
	for _, g := range inst.SecurityGroups {
		if g.GroupName != nil {
			member[*g.GroupName] = true
		}
		if g.GroupId != nil {
			member[*g.GroupId] = true
		}
	}

	if p.anyGroup {
		for _, g := range p.groups {
			if member[g] {
				return true
			}
		}
		return false
	}
	for _, g := range p.groups {
		if !member[g] {
			return false
		}
	}
	return true
}

func (p *Provider) address(inst types.Instance) string {
	switch p.hostType {
	case HostTypePrivateIP:
		return aws.ToString(inst.PrivateIpAddress)
	case HostTypePublicIP:
		return aws.ToString(inst.PublicIpAddress)
	case HostTypePrivateDNS:
		return aws.ToString(inst.PrivateDnsName)
	case HostTypePublicDNS:
		return aws.ToString(inst.PublicDnsName)
	}
	return ""
}
