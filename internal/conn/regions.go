package conn

import "strings"

// regionAliases maps every accepted region spelling to its canonical region.
// Short historical spellings and the numbered form both resolve to the same
// canonical region; extending the known set means adding rows here.
var regionAliases = map[string]string{
	"us-east":        "us-east-1",
	"us-east-1":      "us-east-1",
	"us-west":        "us-west-1",
	"us-west-1":      "us-west-1",
	"us-west-2":      "us-west-2",
	"ap-southeast":   "ap-southeast-1",
	"ap-southeast-1": "ap-southeast-1",
	"ap-southeast-2": "ap-southeast-2",
	"ap-northeast":   "ap-northeast-1",
	"ap-northeast-1": "ap-northeast-1",
	"ap-northeast-2": "ap-northeast-2",
	"eu-west":        "eu-west-1",
	"eu-west-1":      "eu-west-1",
	"eu-central":     "eu-central-1",
	"eu-central-1":   "eu-central-1",
	"sa-east":        "sa-east-1",
	"sa-east-1":      "sa-east-1",
	"cn-north":       "cn-north-1",
	"cn-north-1":     "cn-north-1",
	"us-gov-west":    "us-gov-west-1",
	"us-gov-west-1":  "us-gov-west-1",
}

// CanonicalRegion resolves a region spelling to its canonical region.
// Matching is exact; callers normalize case first.
func CanonicalRegion(region string) (string, bool) {
	canonical, ok := regionAliases[region]
	return canonical, ok
}

// EndpointForRegion returns the EC2 API host for a canonical region.
// The China partition carries its own DNS suffix.
func EndpointForRegion(canonical string) string {
	suffix := "amazonaws.com"
	if strings.HasPrefix(canonical, "cn-") {
		suffix = "amazonaws.com.cn"
	}
	return "ec2." + canonical + "." + suffix
}
