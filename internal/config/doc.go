// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, an optional .env file and STUDY_
// prefixed environment variables. It also owns the default seed curriculum,
// keeping those titles out of the domain types.
package config
