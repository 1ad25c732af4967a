package clicommand

import (
	"github.com/urfave/cli"
)

var DebugFlag = cli.BoolFlag{
	Name:   "debug",
	Usage:  "Enable debug mode",
	EnvVar: "ENVLOCK_DEBUG",
}

var LogLevelFlag = cli.StringFlag{
	Name:   "log-level",
	Value:  "NOTICE",
	Usage:  "Set the log level: DEBUG, NOTICE, INFO, ERROR, WARN, FATAL",
	EnvVar: "ENVLOCK_LOG_LEVEL",
}

var NoColorFlag = cli.BoolFlag{
	Name:   "no-color",
	Usage:  "Don't show colors in logging",
	EnvVar: "ENVLOCK_NO_COLOR",
}

type GlobalConfig struct {
	Debug    bool   `cli:"debug"`
	LogLevel string `cli:"log-level"`
	NoColor  bool   `cli:"no-color"`
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		NoColorFlag,
		DebugFlag,
		LogLevelFlag,
	}
}
