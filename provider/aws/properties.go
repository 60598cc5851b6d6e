package aws

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/catalogfs/cloudauth"
)

// Configuration property keys consumed by Factory.Initialize. Each setting exists
// once for the storage service (aws.s3. prefix) and once for the catalog service
// (aws.glue. prefix); the two groups are ingested independently.
const (
	S3UseAWSSDKDefaultBehavior = "aws.s3.use_aws_sdk_default_behavior"
	S3UseInstanceProfile       = "aws.s3.use_instance_profile"
	S3AccessKey                = "aws.s3.access_key"
	S3SecretKey                = "aws.s3.secret_key"
	S3IAMRoleARN               = "aws.s3.iam_role_arn"
	S3ExternalID               = "aws.s3.external_id"
	S3Region                   = "aws.s3.region"
	S3Endpoint                 = "aws.s3.endpoint"

	GlueUseAWSSDKDefaultBehavior = "aws.glue.use_aws_sdk_default_behavior"
	GlueUseInstanceProfile       = "aws.glue.use_instance_profile"
	GlueAccessKey                = "aws.glue.access_key"
	GlueSecretKey                = "aws.glue.secret_key"
	GlueIAMRoleARN               = "aws.glue.iam_role_arn"
	GlueExternalID               = "aws.glue.external_id"
	GlueRegion                   = "aws.glue.region"
	GlueEndpoint                 = "aws.glue.endpoint"
)

// serviceKeys names the property keys for one service's settings group.
type serviceKeys struct {
	useAWSSDKDefaultBehavior string
	useInstanceProfile       string
	accessKey                string
	secretKey                string
	iamRoleARN               string
	externalID               string
	region                   string
	endpoint                 string
}

var s3Keys = serviceKeys{
	useAWSSDKDefaultBehavior: S3UseAWSSDKDefaultBehavior,
	useInstanceProfile:       S3UseInstanceProfile,
	accessKey:                S3AccessKey,
	secretKey:                S3SecretKey,
	iamRoleARN:               S3IAMRoleARN,
	externalID:               S3ExternalID,
	region:                   S3Region,
	endpoint:                 S3Endpoint,
}

var glueKeys = serviceKeys{
	useAWSSDKDefaultBehavior: GlueUseAWSSDKDefaultBehavior,
	useInstanceProfile:       GlueUseInstanceProfile,
	accessKey:                GlueAccessKey,
	secretKey:                GlueSecretKey,
	iamRoleARN:               GlueIAMRoleARN,
	externalID:               GlueExternalID,
	region:                   GlueRegion,
	endpoint:                 GlueEndpoint,
}

// serviceSettings holds the credential configuration for a single AWS service,
// populated by key lookup with defaults. Settings are written once at Initialize
// and only read afterwards.
type serviceSettings struct {
	service                  string
	useAWSSDKDefaultBehavior bool
	useInstanceProfile       bool
	accessKey                string
	secretKey                string
	iamRoleARN               string
	externalID               string
	region                   string
	endpoint                 string
}

func newServiceSettings(service string, properties map[string]string, keys serviceKeys) serviceSettings {
	return serviceSettings{
		service:                  service,
		useAWSSDKDefaultBehavior: boolProperty(properties, keys.useAWSSDKDefaultBehavior),
		useInstanceProfile:       boolProperty(properties, keys.useInstanceProfile),
		accessKey:                properties[keys.accessKey],
		secretKey:                properties[keys.secretKey],
		iamRoleARN:               properties[keys.iamRoleARN],
		externalID:               properties[keys.externalID],
		region:                   properties[keys.region],
		endpoint:                 properties[keys.endpoint],
	}
}

// boolProperty parses a boolean property. Any value that does not parse as a
// bool counts as false, matching the permissive ingestion of string defaults.
func boolProperty(properties map[string]string, key string) bool {
	b, err := strconv.ParseBool(properties[key])
	if err != nil {
		return false
	}
	return b
}

// validate checks that the settings name a usable credential source and that any
// endpoint override parses as a URI. Not called when default SDK behavior is
// enabled, since every other setting is ignored in that mode.
func (s serviceSettings) validate() error {
	if !s.useInstanceProfile && (s.accessKey == "" || s.secretKey == "") {
		return fmt.Errorf("%s: %w", s.service, cloudauth.ErrNoCredentialSource)
	}

	if s.endpoint != "" {
		if _, err := url.ParseRequestURI(s.endpoint); err != nil {
			return fmt.Errorf("parse %s endpoint %q: %w", s.service, s.endpoint, err)
		}
	}

	return nil
}
