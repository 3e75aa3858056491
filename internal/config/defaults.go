package config

const (
	defaultConfigPath   = "~/.config/wordcounter/config.toml"
	defaultLanguage     = "und"
	defaultTopN         = 10
	defaultExportTopN   = 50
	defaultExportPath   = "word_analysis.txt"
	defaultTerminator   = "END"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultLogDir       = "~/.local/share/wordcounter/logs"
	maxTopN             = 10000
	supportedLogFormats = "console, json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			Language:    defaultLanguage,
			DefaultTopN: defaultTopN,
			ExportTopN:  defaultExportTopN,
		},
		Export: Export{
			DefaultPath: defaultExportPath,
		},
		Session: Session{
			Terminator: defaultTerminator,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
