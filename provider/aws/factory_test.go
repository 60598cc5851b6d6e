package aws

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/suite"

	"github.com/catalogfs/cloudauth"
	"github.com/catalogfs/cloudauth/provider"
)

type factoryTestSuite struct {
	suite.Suite
}

func (f *factoryTestSuite) SetupTest() {
	os.Clearenv()
}

func (f *factoryTestSuite) storageOptions(factory *Factory, properties map[string]string) s3.Options {
	f.Require().NoError(factory.Initialize(properties))
	client, err := factory.StorageClient(context.Background())
	f.Require().NoError(err)
	f.Require().NotNil(client)
	return client.(*s3.Client).Options()
}

func (f *factoryTestSuite) catalogOptions(factory *Factory, properties map[string]string) glue.Options {
	f.Require().NoError(factory.Initialize(properties))
	client, err := factory.CatalogClient(context.Background())
	f.Require().NoError(err)
	f.Require().NotNil(client)
	return client.(*glue.Client).Options()
}

func (f *factoryTestSuite) TestRegistration() {
	factory := provider.Factory(Provider)
	f.Require().NotNil(factory, "aws factory self-registers on load")
	f.IsType((*Factory)(nil), factory)
	f.Equal("AWS", factory.Name())
}

func (f *factoryTestSuite) TestInitialize() {
	factory := NewFactory()

	f.ErrorIs(factory.Initialize(nil), cloudauth.ErrMissingProperties)

	// an empty map is a valid (if useless) configuration
	f.NoError(factory.Initialize(map[string]string{}))
}

func (f *factoryTestSuite) TestNotInitialized() {
	factory := NewFactory()

	client, err := factory.StorageClient(context.Background())
	f.ErrorIs(err, cloudauth.ErrNotInitialized)
	f.Nil(client)

	catalog, err := factory.CatalogClient(context.Background())
	f.ErrorIs(err, cloudauth.ErrNotInitialized)
	f.Nil(catalog)
}

func (f *factoryTestSuite) TestStorageClientDefaultBehavior() {
	// with default SDK behavior every other storage setting is ignored
	opts := f.storageOptions(NewFactory(), map[string]string{
		S3UseAWSSDKDefaultBehavior: "true",
		S3AccessKey:                "AK",
		S3SecretKey:                "SK",
		S3IAMRoleARN:               "arn:aws:iam::123456789012:role/MyRole",
		S3Region:                   "eu-central-1",
		S3Endpoint:                 "http://localhost:9000",
	})

	f.Nil(opts.BaseEndpoint, "endpoint override is ignored")
	f.Empty(opts.Region, "region override is ignored")
}

func (f *factoryTestSuite) TestStorageClientInstanceProfile() {
	opts := f.storageOptions(NewFactory(), map[string]string{
		S3UseInstanceProfile: "true",
		S3Region:             "us-west-2",
	})

	f.Equal("us-west-2", opts.Region)
	f.Nil(opts.BaseEndpoint, "no endpoint override")
	f.IsType((*ec2rolecreds.Provider)(nil), opts.Credentials, "no role assumption")
}

func (f *factoryTestSuite) TestStorageClientStaticKeyPair() {
	opts := f.storageOptions(NewFactory(), map[string]string{
		S3AccessKey: "AK",
		S3SecretKey: "SK",
		S3Region:    "us-east-2",
		S3Endpoint:  "http://localhost:9000",
	})

	f.Equal("us-east-2", opts.Region)
	f.Require().NotNil(opts.BaseEndpoint)
	f.Equal("http://localhost:9000", *opts.BaseEndpoint)

	static, ok := opts.Credentials.(credentials.StaticCredentialsProvider)
	f.Require().True(ok, "expected a static credentials provider")
	creds, err := static.Retrieve(context.Background())
	f.NoError(err)
	f.Equal("AK", creds.AccessKeyID)
	f.Equal("SK", creds.SecretAccessKey)
}

func (f *factoryTestSuite) TestStorageClientNoCredentialSource() {
	factory := NewFactory()
	f.Require().NoError(factory.Initialize(map[string]string{}))

	client, err := factory.StorageClient(context.Background())
	f.ErrorIs(err, cloudauth.ErrNoCredentialSource)
	f.Nil(client, "no anonymous fallback")
}

func (f *factoryTestSuite) TestStorageClientMalformedEndpoint() {
	factory := NewFactory()
	f.Require().NoError(factory.Initialize(map[string]string{
		S3AccessKey: "AK",
		S3SecretKey: "SK",
		S3Endpoint:  "://not-a-uri",
	}))

	client, err := factory.StorageClient(context.Background())
	f.Error(err)
	f.Contains(err.Error(), "endpoint")
	f.Nil(client)
}

func (f *factoryTestSuite) TestCatalogClientAssumedRole() {
	opts := f.catalogOptions(NewFactory(), map[string]string{
		GlueAccessKey:  "AK",
		GlueSecretKey:  "SK",
		GlueIAMRoleARN: "arn:aws:iam::1:role/r",
	})

	f.IsType((*aws.CredentialsCache)(nil), opts.Credentials, "static pair is wrapped in an assumed-role provider")
}

func (f *factoryTestSuite) TestServiceIndependence() {
	properties := map[string]string{
		S3UseInstanceProfile:   "true",
		S3Region:               "us-west-2",
		GlueAccessKey:          "AK",
		GlueSecretKey:          "SK",
		GlueRegion:             "eu-west-1",
		GlueEndpoint:           "https://glue.example.com",
		GlueUseInstanceProfile: "false",
	}

	factory := NewFactory()
	storageOpts := f.storageOptions(factory, properties)
	catalogOpts := f.catalogOptions(factory, properties)

	f.Equal("us-west-2", storageOpts.Region)
	f.Nil(storageOpts.BaseEndpoint)
	f.IsType((*ec2rolecreds.Provider)(nil), storageOpts.Credentials)

	f.Equal("eu-west-1", catalogOpts.Region)
	f.Require().NotNil(catalogOpts.BaseEndpoint)
	f.Equal("https://glue.example.com", *catalogOpts.BaseEndpoint)
	f.IsType(credentials.StaticCredentialsProvider{}, catalogOpts.Credentials)
}

func (f *factoryTestSuite) TestAuxiliaryClientsAbsent() {
	factory := NewFactory()
	f.Require().NoError(factory.Initialize(map[string]string{
		S3UseAWSSDKDefaultBehavior:   "true",
		GlueUseAWSSDKDefaultBehavior: "true",
	}))

	kmsClient, ok := factory.KeyManagementClient()
	f.False(ok)
	f.Nil(kmsClient)

	dynamoClient, ok := factory.KeyValueStoreClient()
	f.False(ok)
	f.Nil(dynamoClient)
}

func (f *factoryTestSuite) TestWithHTTPClient() {
	httpClient := &http.Client{}

	opts := f.storageOptions(NewFactory(WithHTTPClient(httpClient)), map[string]string{
		S3AccessKey: "AK",
		S3SecretKey: "SK",
	})

	f.Same(httpClient, opts.HTTPClient, "ambient HTTP client reaches the built client")
}

func (f *factoryTestSuite) TestWithRetryer() {
	newRetryer := func() aws.Retryer {
		return retry.AddWithMaxAttempts(retry.NewStandard(), 2)
	}

	opts := f.storageOptions(NewFactory(WithRetryer(newRetryer)), map[string]string{
		S3UseInstanceProfile: "true",
	})

	f.NotNil(opts.Retryer)
}

func (f *factoryTestSuite) TestOptionNames() {
	f.Equal("httpClient", WithHTTPClient(http.DefaultClient).NewFactoryOptionName())
	f.Equal("retryer", WithRetryer(nil).NewFactoryOptionName())
	f.Equal("loadOptions", WithLoadOptions().NewFactoryOptionName())
}

func TestFactory(t *testing.T) {
	suite.Run(t, new(factoryTestSuite))
}
