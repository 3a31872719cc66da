package conn

import "testing"

func TestCanonicalRegion_AllAliases(t *testing.T) {
	cases := map[string]string{
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

	for alias, want := range cases {
		got, ok := CanonicalRegion(alias)
		if !ok {
			t.Errorf("%q: expected a canonical region", alias)
			continue
		}
		if got != want {
			t.Errorf("%q: canonical = %q, want %q", alias, got, want)
		}
	}
}

func TestCanonicalRegion_Unknown(t *testing.T) {
	for _, region := range []string{"does-not-exist", "", "eu-west-3-1"} {
		if canonical, ok := CanonicalRegion(region); ok {
			t.Errorf("%q: unexpectedly resolved to %q", region, canonical)
		}
	}
}

func TestEndpointForRegion(t *testing.T) {
	cases := map[string]string{
		"eu-west-1":      "ec2.eu-west-1.amazonaws.com",
		"us-gov-west-1":  "ec2.us-gov-west-1.amazonaws.com",
		"ap-southeast-2": "ec2.ap-southeast-2.amazonaws.com",
	}
	for canonical, want := range cases {
		if got := EndpointForRegion(canonical); got != want {
			t.Errorf("%q: endpoint = %q, want %q", canonical, got, want)
		}
	}
}

func TestEndpointForRegion_ChinaPartition(t *testing.T) {
	if got, want := EndpointForRegion("cn-north-1"), "ec2.cn-north-1.amazonaws.com.cn"; got != want {
		t.Errorf("endpoint = %q, want %q", got, want)
	}
}
