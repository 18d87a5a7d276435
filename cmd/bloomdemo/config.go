package main

import (
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCapacity = 100000
	defaultRatio    = 3
	defaultLogLevel = "INFO"
)

var defaultKeys = []string{
	"A",
	"AB",
	"ABA",
	"ABBA",
	"CAR",
	"CDR",
	"CADR",
	"CADADDR",
}

type config struct {
	Capacity uint32 `short:"m" long:"capacity" description:"width of the filter in bits"`
	Ratio    uint32 `short:"r" long:"ratio" description:"bytes per expected element, must be > 1"`
	LogLevel string `long:"loglevel" description:"log level (DEBUG, INFO, WARN, ERROR, NOOP)"`
	NoDump   bool   `long:"nodump" description:"do not dump the filter after each insert"`

	keys []string
}

// loadConfig parses args over the defaults. With no args the configuration
// reproduces the fixed demonstration run. Filter parameters are validated by
// bloom.New.
func loadConfig(args []string) (*config, *flags.Parser, error) {
	cfg := config{
		Capacity: defaultCapacity,
		Ratio:    defaultRatio,
		LogLevel: defaultLogLevel,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [key...]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, parser, err
	}

	cfg.keys = defaultKeys
	if len(rest) > 0 {
		cfg.keys = rest
	}
	return &cfg, parser, nil
}
