// Package config provides configuration structures and utilities for ehrtable.
// It defines the input and output locations of a report run and loads the
// optional YAML configuration file.
package config
