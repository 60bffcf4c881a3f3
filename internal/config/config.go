package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/searchprov/internal/domain"
	"github.com/kailas-cloud/searchprov/internal/domain/mode"
)

// DefaultPath is the settings file read when no path is given.
const DefaultPath = "appsettings.json"

// DefaultAPIVersion is the management REST API version.
const DefaultAPIVersion = "2023-11-01"

// Config holds the provisioning settings. Key names match appsettings.json.
type Config struct {
	SearchServiceURI            string `json:"SearchServiceUri" yaml:"SearchServiceUri"`
	SearchServiceAdminAPIKey    string `json:"SearchServiceAdminApiKey" yaml:"SearchServiceAdminApiKey"`
	CosmosDBConnectionString    string `json:"CosmosDBConnectionString" yaml:"CosmosDBConnectionString"`
	CosmosDBDatabaseName        string `json:"CosmosDBDatabaseName" yaml:"CosmosDBDatabaseName"`
	BlobStorageAccountName      string `json:"BlobStorageAccountName" yaml:"BlobStorageAccountName"`
	BlobStorageConnectionString string `json:"BlobStorageConnectionString" yaml:"BlobStorageConnectionString"`

	Mode              string        `json:"Mode" yaml:"Mode"`
	SearchAPIVersion  string        `json:"SearchApiVersion" yaml:"SearchApiVersion"`
	RequestTimeoutSec int           `json:"RequestTimeoutSec" yaml:"RequestTimeoutSec"`
	Logging           LoggingConfig `json:"Logging" yaml:"Logging"`
	Metrics           MetricsConfig `json:"Metrics" yaml:"Metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `json:"Level" yaml:"Level"` // debug, info, warn, error (default: determined by env)
	File  string `json:"File" yaml:"File"`   // optional rotated log file
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	TextfilePath string `json:"TextfilePath" yaml:"TextfilePath"` // node_exporter textfile, empty disables
}

// Load reads the settings file at path, expands ${VAR} references in the
// decoded string values and applies environment overrides for the top-level
// keys. A missing file is not an error when every required key comes from
// the environment.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := decode(path, data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.expandEnv()
	case errors.Is(err, os.ErrNotExist):
		// environment only
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

// decode parses .yaml and .yml files as YAML and anything else as JSON.
// JSON may carry comments and trailing commas, as appsettings.json allows.
func decode(path string, data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return err
		}
		return json.Unmarshal(std, cfg)
	}
}

// LoadDotEnv loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set.
// A missing default file is ignored; an explicitly named one must exist.
func LoadDotEnv(path string, explicit bool) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// applyEnv overrides file values with environment variables named after the keys.
func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"SearchServiceUri":            &c.SearchServiceURI,
		"SearchServiceAdminApiKey":    &c.SearchServiceAdminAPIKey,
		"CosmosDBConnectionString":    &c.CosmosDBConnectionString,
		"CosmosDBDatabaseName":        &c.CosmosDBDatabaseName,
		"BlobStorageAccountName":      &c.BlobStorageAccountName,
		"BlobStorageConnectionString": &c.BlobStorageConnectionString,
		"Mode":                        &c.Mode,
		"SearchApiVersion":            &c.SearchAPIVersion,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("RequestTimeoutSec"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RequestTimeoutSec must be an integer, got %q", v)
		}
		c.RequestTimeoutSec = n
	}
	return nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.SearchAPIVersion == "" {
		c.SearchAPIVersion = DefaultAPIVersion
	}
	if c.RequestTimeoutSec <= 0 {
		c.RequestTimeoutSec = 30
	}
}

// Validate checks the settings required by the given mode.
// Blob settings are only required in multi-source mode.
func (c *Config) Validate(m mode.Mode) error {
	if err := c.validate(m); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) validate(m mode.Mode) error {
	if c.SearchServiceURI == "" {
		return fmt.Errorf("SearchServiceUri is required")
	}
	u, err := url.Parse(c.SearchServiceURI)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return fmt.Errorf("SearchServiceUri must be an absolute http(s) URL, got %q", c.SearchServiceURI)
	}
	if c.SearchServiceAdminAPIKey == "" {
		return fmt.Errorf("SearchServiceAdminApiKey is required")
	}
	if c.CosmosDBConnectionString == "" {
		return fmt.Errorf("CosmosDBConnectionString is required")
	}
	if c.CosmosDBDatabaseName == "" {
		return fmt.Errorf("CosmosDBDatabaseName is required")
	}
	if !m.IsValid() {
		return fmt.Errorf("unknown mode %q", m)
	}
	if m == mode.Multi {
		if c.BlobStorageAccountName == "" {
			return fmt.Errorf("BlobStorageAccountName is required in %s mode", m)
		}
		if c.BlobStorageConnectionString == "" {
			return fmt.Errorf("BlobStorageConnectionString is required in %s mode", m)
		}
	}
	return nil
}

// expandEnv expands ${VAR} references in every string setting.
func (c *Config) expandEnv() {
	for _, dst := range []*string{
		&c.SearchServiceURI,
		&c.SearchServiceAdminAPIKey,
		&c.CosmosDBConnectionString,
		&c.CosmosDBDatabaseName,
		&c.BlobStorageAccountName,
		&c.BlobStorageConnectionString,
		&c.Mode,
		&c.SearchAPIVersion,
		&c.Logging.Level,
		&c.Logging.File,
		&c.Metrics.TextfilePath,
	} {
		*dst = expandEnvVars(*dst)
	}
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		expr := match[2 : len(match)-1] // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return val
	})
}
