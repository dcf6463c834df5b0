package generator

import "github.com/karammi/snowplow/internal/config"

// Credentials are passed through to Dataflow Runner unchanged.
type Credentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
}

// CredentialsFrom copies the AWS credentials out of cfg.
func CredentialsFrom(cfg *config.Config) Credentials {
	return Credentials{
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	}
}
