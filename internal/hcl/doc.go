// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses the runner configuration file, evaluates it with a
// small function library (env, lower, upper, join, format) so secrets can be
// templated from the environment, and translates the result into the
// format-agnostic config.Config.
package hcl
