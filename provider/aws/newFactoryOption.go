package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/catalogfs/cloudauth/options"
)

const (
	optionNameHTTPClient  = "httpClient"
	optionNameRetryer     = "retryer"
	optionNameLoadOptions = "loadOptions"
)

// WithHTTPClient returns httpClientOpt implementation of NewFactoryOption
//
// WithHTTPClient is used to explicitly specify the HTTP client every built
// client uses, e.g. to set timeouts or connection pooling.
func WithHTTPClient(c aws.HTTPClient) options.NewFactoryOption[Factory] {
	return &httpClientOpt{
		client: c,
	}
}

type httpClientOpt struct {
	client aws.HTTPClient
}

func (o *httpClientOpt) Apply(f *Factory) {
	f.httpClient = o.client
}

func (o *httpClientOpt) NewFactoryOptionName() string {
	return optionNameHTTPClient
}

// WithRetryer returns retryerOpt implementation of NewFactoryOption
//
// WithRetryer is used to specify the retry policy applied to every built
// client.
func WithRetryer(r func() aws.Retryer) options.NewFactoryOption[Factory] {
	return &retryerOpt{
		retryer: r,
	}
}

type retryerOpt struct {
	retryer func() aws.Retryer
}

func (o *retryerOpt) Apply(f *Factory) {
	f.retryer = o.retryer
}

func (o *retryerOpt) NewFactoryOptionName() string {
	return optionNameRetryer
}

// WithLoadOptions returns loadOptionsOpt implementation of NewFactoryOption
//
// WithLoadOptions is used to pass additional SDK config load options, applied
// after any HTTP client and retryer options.
func WithLoadOptions(opts ...func(*config.LoadOptions) error) options.NewFactoryOption[Factory] {
	return &loadOptionsOpt{
		opts: opts,
	}
}

type loadOptionsOpt struct {
	opts []func(*config.LoadOptions) error
}

func (o *loadOptionsOpt) Apply(f *Factory) {
	f.loadOptions = append(f.loadOptions, o.opts...)
}

func (o *loadOptionsOpt) NewFactoryOptionName() string {
	return optionNameLoadOptions
}
