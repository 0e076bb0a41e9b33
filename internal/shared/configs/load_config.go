package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"log-report/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultConfigPath = "./configs/configs.yml"
	EnvPrefix         = "LOG_REPORT"
)

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"error-log":        "log.error_file",
	"fetch-timeout":    "fetch.timeout",
	"metadata-dir":     "metadata.root_dir",
	"metadata-format":  "metadata.format",
	"no-metadata":      "metadata.enabled",
	"metrics-textfile": "metrics.textfile_path",
	"port":             "server.port",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.error_file", "errors.log")
	v.SetDefault("fetch.timeout", 30)
	v.SetDefault("fetch.max_bytes", 64*1024*1024)
	v.SetDefault("metadata.enabled", true)
	v.SetDefault("metadata.root_dir", ".")
	v.SetDefault("metadata.file_name", "browser-meta.json")
	v.SetDefault("metadata.format", "json")
	v.SetDefault("metrics.textfile_path", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("classifier.rules", []map[string]any{})
}

// LoadConfig resolves configuration from defaults, the YAML file at configPath, a .env
// file, LOG_REPORT_* environment variables and finally flags, then validates it.
// A missing file at DefaultConfigPath is tolerated; any other missing file is an error.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if !(configPath == DefaultConfigPath && errors.Is(err, fs.ErrNotExist)) {
				return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
			}
		}
	}

	// optional, never overrides variables already set
	_ = godotenv.Load()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if name == "no-metadata" {
			// inverted switch
			v.Set(key, flag.Value.String() != "true")
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "Config.Fetch.Timeout" -> "fetch.timeout")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
