// Package config defines the strongly-typed configuration model consumed by
// the artifact generators, along with the Loader interface implemented by
// format-specific packages and the ConfigError type.
//
// A `config.Config` is validated once at the load boundary. Fields that are
// only needed by some pipeline stages are optional pointers; stages check
// them with Require before use, so downstream code never guesses whether a
// value was configured.
package config
