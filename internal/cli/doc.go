// Package cli implements the modop command line: configuration through
// viper (flags, MODOP_* environment, optional YAML file), zap logging, and
// one cobra command per library operation.
package cli
