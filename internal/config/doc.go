// Package config provides configuration management for the awscmds CLI.
//
// Settings come from, in increasing precedence: built-in defaults, the
// config file, AWSCMDS_* environment variables, and command-line flags bound
// by the caller. The defaults reproduce the stock behaviour: run "aws" from
// PATH and print service:command lines.
//
// # Configuration File
//
// The default location is $XDG_CONFIG_HOME/awscmds/config.yaml (override the
// directory with AWSCMDS_CONFIG_DIR). A ./config.yaml in the working
// directory takes precedence.
//
//	version: 1
//	binary: /usr/local/bin/aws
//	format: lines
//
// # Environment
//
//	AWSCMDS_BINARY=aws2 awscmds
//	AWSCMDS_FORMAT=json awscmds
package config
