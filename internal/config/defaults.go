package config

const (
	defaultReportDir      = "~/.local/share/mkvswap/reports"
	defaultLogDir         = "~/.local/share/mkvswap/logs"
	defaultTargetLanguage = "eng"
	defaultFFprobeBinary  = "ffprobe"
	defaultMkvmergeBinary = "mkvmerge"
	defaultToolTimeout    = 600
	defaultHistoryPath    = "~/.local/share/mkvswap/history.db"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

func defaultExtensions() []string {
	return []string{".mkv", ".mp4", ".mov", ".avi", ".m4v"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReportDir: defaultReportDir,
			LogDir:    defaultLogDir,
		},
		Scan: Scan{
			Extensions:     defaultExtensions(),
			TargetLanguage: defaultTargetLanguage,
		},
		Tools: Tools{
			FFprobe:        defaultFFprobeBinary,
			Mkvmerge:       defaultMkvmergeBinary,
			TimeoutSeconds: defaultToolTimeout,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
