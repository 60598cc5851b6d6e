package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/catalogfs/cloudauth"
	"github.com/catalogfs/cloudauth/options"
	"github.com/catalogfs/cloudauth/provider"
)

// Provider defines the provider name.
const Provider = "aws"
const name = "AWS"

const (
	storageService = "s3"
	catalogService = "glue"
)

// Factory implements cloudauth.ClientFactory for AWS. It builds S3 storage
// clients and Glue catalog clients from per-service credential settings
// ingested by Initialize. Every build call resolves credentials and allocates
// a fresh client; nothing is cached between calls.
type Factory struct {
	storage     serviceSettings
	catalog     serviceSettings
	initialized bool

	httpClient  aws.HTTPClient
	retryer     func() aws.Retryer
	loadOptions []func(*config.LoadOptions) error
}

// NewFactory initializer for Factory struct.
func NewFactory(opts ...options.NewFactoryOption[Factory]) *Factory {
	f := &Factory{}

	// apply options
	options.ApplyOptions(f, opts...)

	return f
}

// Initialize ingests the property map into the storage and catalog settings
// groups. The two groups are independent: storage and catalog may use entirely
// different credential strategies, regions, and endpoints.
func (f *Factory) Initialize(properties map[string]string) error {
	if properties == nil {
		return cloudauth.ErrMissingProperties
	}

	f.storage = newServiceSettings(storageService, properties, s3Keys)
	f.catalog = newServiceSettings(catalogService, properties, glueKeys)
	f.initialized = true
	return nil
}

// Name returns "AWS"
func (f *Factory) Name() string {
	return name
}

// StorageClient builds the S3 client for the storage settings group. With
// default SDK behavior enabled the ambient credential chain is used and all
// other storage settings are ignored; otherwise credentials resolve per the
// instance-profile/static-key rule, optionally wrapped in role assumption,
// with region and endpoint overrides applied when set.
func (f *Factory) StorageClient(ctx context.Context) (StorageClient, error) {
	if !f.initialized {
		return nil, cloudauth.ErrNotInitialized
	}

	if f.storage.useAWSSDKDefaultBehavior {
		cfg, err := f.loadConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", storageService, err)
		}
		return s3.NewFromConfig(cfg), nil
	}

	if err := f.storage.validate(); err != nil {
		return nil, err
	}

	creds, err := f.resolveCredentials(ctx, f.storage)
	if err != nil {
		return nil, err
	}

	cfg, err := f.loadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s config: %w", storageService, err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.Credentials = creds

		if f.storage.region != "" {
			o.Region = f.storage.region
		}

		// use specific endpoint, otherwise, will use aws "default endpoint resolver" based on region
		if f.storage.endpoint != "" {
			o.BaseEndpoint = aws.String(f.storage.endpoint)
		}
	}), nil
}

// CatalogClient builds the Glue Data Catalog client for the catalog settings
// group. Resolution is identical to StorageClient but operates on the catalog
// settings, which are independent of the storage ones.
func (f *Factory) CatalogClient(ctx context.Context) (CatalogClient, error) {
	if !f.initialized {
		return nil, cloudauth.ErrNotInitialized
	}

	if f.catalog.useAWSSDKDefaultBehavior {
		cfg, err := f.loadConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", catalogService, err)
		}
		return glue.NewFromConfig(cfg), nil
	}

	if err := f.catalog.validate(); err != nil {
		return nil, err
	}

	creds, err := f.resolveCredentials(ctx, f.catalog)
	if err != nil {
		return nil, err
	}

	cfg, err := f.loadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s config: %w", catalogService, err)
	}

	return glue.NewFromConfig(cfg, func(o *glue.Options) {
		o.Credentials = creds

		if f.catalog.region != "" {
			o.Region = f.catalog.region
		}

		if f.catalog.endpoint != "" {
			o.BaseEndpoint = aws.String(f.catalog.endpoint)
		}
	}), nil
}

// KeyManagementClient returns the KMS client. KMS is not supported by this
// factory; ok is always false, which callers must treat as "not provided"
// rather than an error.
func (f *Factory) KeyManagementClient() (client *kms.Client, ok bool) {
	return nil, false
}

// KeyValueStoreClient returns the DynamoDB client. DynamoDB is not supported
// by this factory; ok is always false, which callers must treat as "not
// provided" rather than an error.
func (f *Factory) KeyValueStoreClient() (client *dynamodb.Client, ok bool) {
	return nil, false
}

// loadConfig loads the ambient SDK configuration with any factory-level HTTP
// client, retryer, and extra load options applied.
func (f *Factory) loadConfig(ctx context.Context, extra ...func(*config.LoadOptions) error) (aws.Config, error) {
	opts := make([]func(*config.LoadOptions) error, 0, len(f.loadOptions)+len(extra)+2)
	if f.httpClient != nil {
		opts = append(opts, config.WithHTTPClient(f.httpClient))
	}
	if f.retryer != nil {
		opts = append(opts, config.WithRetryer(f.retryer))
	}
	opts = append(opts, f.loadOptions...)
	opts = append(opts, extra...)

	return config.LoadDefaultConfig(ctx, opts...)
}

func init() {
	// registers a default Factory
	provider.Register(Provider, NewFactory())
}
