//go:build !linux

package cli

import "flag"

// Only Linux lets the receiver pick among several adapters.
func (c *Config) registerFlagsOsSpecific(_ *flag.FlagSet) {}
