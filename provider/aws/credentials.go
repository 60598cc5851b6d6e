package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/uuid"
)

// baseCredentials selects the provider for a service's base (non-assumed)
// credentials: the instance profile when enabled, otherwise the static key
// pair. Settings must have passed validate first.
func baseCredentials(settings serviceSettings) aws.CredentialsProvider {
	if settings.useInstanceProfile {
		return ec2rolecreds.New()
	}
	return credentials.NewStaticCredentialsProvider(settings.accessKey, settings.secretKey, "")
}

// assumeRoleOptions returns the option mutator for a single role assumption.
// The session name is fixed per invocation so each client build gets its own
// audit-correlatable session; the external ID is attached only when non-empty,
// never sent as an empty string.
func assumeRoleOptions(externalID string) func(*stscreds.AssumeRoleOptions) {
	sessionName := uuid.New().String()
	return func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = sessionName
		if externalID != "" {
			o.ExternalID = aws.String(externalID)
		}
	}
}

// resolveCredentials returns the credentials provider for a service, wrapping
// the base provider in an assume-role provider when an IAM role is configured.
// The assumed-role session credentials are refreshed by the SDK's credentials
// cache, not by this package.
func (f *Factory) resolveCredentials(ctx context.Context, settings serviceSettings) (aws.CredentialsProvider, error) {
	base := baseCredentials(settings)
	if settings.iamRoleARN == "" {
		return base, nil
	}

	cfg, err := f.loadConfig(ctx, config.WithCredentialsProvider(base))
	if err != nil {
		return nil, fmt.Errorf("load %s sts config: %w", settings.service, err)
	}

	provider := stscreds.NewAssumeRoleProvider(
		sts.NewFromConfig(cfg),
		settings.iamRoleARN,
		assumeRoleOptions(settings.externalID),
	)
	return aws.NewCredentialsCache(provider), nil
}
