// Package config declares the padmux command line surface consumed by
// kong.
package config

import (
	"github.com/padmux/padmux/internal/cmd"
)

// LogConfig groups the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"PADMUX_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"PADMUX_LOG_FILE"`
	RawFile string `help:"Hex-dump every serial frame to this file" env:"PADMUX_LOG_RAW_FILE"`
}

// CLI is the kong root model: global flags plus the commands.
type CLI struct {
	Log        LogConfig `embed:"" prefix:"log."`
	ConfigFile string    `name:"config" help:"Path to a configuration file" env:"PADMUX_CONFIG"`

	Run       cmd.Run           `cmd:"" default:"1" help:"Aggregate attached controllers into one virtual gamepad"`
	Config    cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
	Install   cmd.Install       `cmd:"" help:"Install padmux as a systemd service"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Remove the padmux systemd service"`
}
