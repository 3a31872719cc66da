package ec2

// Note: EC2 client construction is the caller's responsibility.
// Assemble an aws.Config from the resolver outputs and hand it to the
// AWS SDK directly:
//
//	import (
//	    "github.com/aws/aws-sdk-go-v2/service/ec2"
//
//	    "github.com/justapithecus/scout/internal/conn"
//	    "github.com/justapithecus/scout/internal/discovery"
//	)
//
//	r := conn.NewResolver(conn.Config{})
//	endpoint, _ := r.FindEndpoint(settings)
//	cfg := discovery.NewAWSConfig(discovery.ClientParams{
//	    Credentials: r.BuildCredentials(settings),
//	    Client:      r.BuildConfiguration(settings),
//	    Endpoint:    endpoint,
//	})
//	client := ec2.NewFromConfig(cfg)
//
// For EC2-compatible stacks (LocalStack, moto), set an explicit endpoint
// through the settings (cloud.aws.ec2.endpoint) and it is used verbatim.
