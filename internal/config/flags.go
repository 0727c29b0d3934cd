package config

import "flag"

// Flags holds the command-line overrides shared by every subcommand.
type Flags struct {
	Config    string
	LogLevel  string
	Format    string
	Precision int
	Debug     bool
}

// RegisterFlags adds the common flags to fs. Call this before fs.Parse.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file (.yaml, .yml or .toml)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.Format, "format", "", "Output format (text, yaml)")
	fs.IntVar(&f.Precision, "precision", -1, "Digits after the decimal point")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	return f
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Precision >= 0 {
		cfg.Output.Precision = f.Precision
	}
}
