package configs

// Config holds all configuration for the application.
type Config struct {
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Fetch      FetchConfig      `mapstructure:"fetch" validate:"required"`
	Metadata   MetadataConfig   `mapstructure:"metadata" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level     string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	ErrorFile string `mapstructure:"error_file"` // empty disables the error log file
}

// FetchConfig holds configuration for downloading the CSV export.
type FetchConfig struct {
	Timeout  int   `mapstructure:"timeout" validate:"required,min=1"`   // seconds
	MaxBytes int64 `mapstructure:"max_bytes" validate:"required,min=1"` // response body limit
}

// MetadataConfig holds configuration of the browser metadata snapshot.
type MetadataConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	RootDir  string `mapstructure:"root_dir" validate:"required"`
	FileName string `mapstructure:"file_name" validate:"required"`
	Format   string `mapstructure:"format" validate:"required,oneof=json yaml"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the textfile export
}

// ServerConfig holds configuration of the serve mode.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// ClassifierConfig overrides the built-in browser rules. Rules are evaluated in order.
type ClassifierConfig struct {
	Rules []BrowserRuleConfig `mapstructure:"rules" validate:"dive"`
}

// BrowserRuleConfig is one browser rule: Pattern must match and Exclude, if set, must not.
type BrowserRuleConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Pattern string `mapstructure:"pattern" validate:"required"`
	Exclude string `mapstructure:"exclude"`
}
