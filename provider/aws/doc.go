package aws

/*
Package aws - AWS client factory for storage (S3) and catalog (Glue) services using AWS SDK for Go v2.

# Usage

Rely on github.com/catalogfs/cloudauth/provider

	import(
	    "github.com/catalogfs/cloudauth/provider"
	    "github.com/catalogfs/cloudauth/provider/aws"
	)

	func UseFactory() error {
	    factory := provider.Factory(aws.Provider)
	    ...
	}

Or call directly:

	import "github.com/catalogfs/cloudauth/provider/aws"

	func DoSomething() error {
	    factory := aws.NewFactory()
	    if err := factory.Initialize(properties); err != nil {
	        return err
	    }

	    storage, err := factory.StorageClient(context.Background())
	    if err != nil {
	        return err
	    }
	    ...
	}

The factory can be augmented with the following creation options to apply an
ambient HTTP client or retry policy to every client it builds:

	factory := aws.NewFactory(
	    aws.WithHTTPClient(httpClient),
	    aws.WithRetryer(func() aws.Retryer {
	        return retry.AddWithMaxAttempts(retry.NewStandard(), 3)
	    }),
	)

# Configuration properties

Initialize consumes a flat map of string properties. Each setting exists once
for the storage service and once for the catalog service:

	aws.s3.use_aws_sdk_default_behavior    aws.glue.use_aws_sdk_default_behavior
	aws.s3.use_instance_profile            aws.glue.use_instance_profile
	aws.s3.access_key                      aws.glue.access_key
	aws.s3.secret_key                      aws.glue.secret_key
	aws.s3.iam_role_arn                    aws.glue.iam_role_arn
	aws.s3.external_id                     aws.glue.external_id
	aws.s3.region                          aws.glue.region
	aws.s3.endpoint                        aws.glue.endpoint

Missing string properties default to "", missing boolean properties to false.

# Authentication

Authentication resolves per service when a client is built, preferring the
first strategy that applies:

 1. use_aws_sdk_default_behavior - the SDK's ambient credential discovery
    chain (environment, shared config, IMDS, ...). All other settings for the
    service are ignored, including region and endpoint overrides.

 2. use_instance_profile - credentials supplied by the EC2 instance metadata
    service.

 3. access_key/secret_key - a static key pair; both must be non-empty.

If none applies the build fails with cloudauth.ErrNoCredentialSource. The
factory never falls back to anonymous credentials.

When iam_role_arn is set, the resolved credentials are only used to call STS;
the built client authenticates with the temporary credentials of the assumed
role. A fresh random session name is generated for every build, and
external_id is attached to the assumption request only when non-empty. Token
exchange happens lazily on the client's first request, and refresh of the
session credentials is handled by the SDK's credentials cache.

Storage and catalog are fully independent: the two services may use different
strategies, roles, regions, and endpoints within the same process.

# See Also

See: https://github.com/aws/aws-sdk-go-v2
*/
