// Package config resolves a pandemaniac run from a YAML config file,
// PANDEMANIAC_* environment variables and command-line flags (viper), parses
// the game parameters out of the graph name, and builds the logrus logger.
package config
