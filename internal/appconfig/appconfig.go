// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"

	// defaultProbeTimeout bounds the quick --help probe used while locating the binary.
	defaultProbeTimeout = 5 * time.Second
	// defaultDiagnosticTimeout bounds each installation-check invocation.
	defaultDiagnosticTimeout = 10 * time.Second
	// defaultListTimeout bounds each inventory listing invocation.
	defaultListTimeout = 15 * time.Second
	// defaultTestTimeout bounds the post-create smoke test.
	defaultTestTimeout = 15 * time.Second
	// defaultSessionTimeout bounds the opening overview prompt of a chat session.
	defaultSessionTimeout = 120 * time.Second
)

// defaultRecommendedModels is the starter set offered when no models are installed.
var defaultRecommendedModels = []string{"qwen2.5:0.5b", "llama3.2:1b", "gemma:2b", "phi3:mini"}

// Config represents the top-level application configuration.
type Config struct {
	Binary                string   `json:"binary,omitempty"`
	ProbeTimeoutSeconds   int      `json:"probeTimeout,omitempty"`
	DiagTimeoutSeconds    int      `json:"diagTimeout,omitempty"`
	ListTimeoutSeconds    int      `json:"listTimeout,omitempty"`
	TestTimeoutSeconds    int      `json:"testTimeout,omitempty"`
	SessionTimeoutSeconds int      `json:"sessionTimeout,omitempty"`
	WorkDir               string   `json:"workDir,omitempty"`
	RecommendedModels     []string `json:"recommendedModels,omitempty"`
	LogFile               string   `json:"logFile,omitempty"`
	Debug                 bool     `json:"debug"`
	Plain                 bool     `json:"plain"`
	ConfigPath            string   `json:"-"`
}

// ProbeTimeout returns the timeout for binary-location probes.
func (c Config) ProbeTimeout() time.Duration {
	return secondsOr(c.ProbeTimeoutSeconds, defaultProbeTimeout)
}

// DiagnosticTimeout returns the timeout for each installation diagnostic.
func (c Config) DiagnosticTimeout() time.Duration {
	return secondsOr(c.DiagTimeoutSeconds, defaultDiagnosticTimeout)
}

// ListTimeout returns the timeout for inventory listing.
func (c Config) ListTimeout() time.Duration {
	return secondsOr(c.ListTimeoutSeconds, defaultListTimeout)
}

// TestTimeout returns the timeout for the post-create smoke test.
func (c Config) TestTimeout() time.Duration {
	return secondsOr(c.TestTimeoutSeconds, defaultTestTimeout)
}

// SessionTimeout returns the timeout for the opening chat overview.
func (c Config) SessionTimeout() time.Duration {
	return secondsOr(c.SessionTimeoutSeconds, defaultSessionTimeout)
}

// Recommended returns the starter model set, falling back to the built-in list.
func (c Config) Recommended() []string {
	if len(c.RecommendedModels) > 0 {
		return c.RecommendedModels
	}
	return defaultRecommendedModels
}

// WorkingDir returns the directory where temporary model files are written.
func (c Config) WorkingDir() string {
	if c.WorkDir != "" {
		return c.WorkDir
	}
	return "."
}

// LogFilePath returns the path to the application log file, empty meaning stdout only.
func (c Config) LogFilePath() string {
	return c.LogFile
}

func secondsOr(s int, fallback time.Duration) time.Duration {
	if s <= 0 {
		return fallback
	}
	return time.Duration(s) * time.Second
}

// Load reads the application configuration from the specified path. A missing
// file is not an error: every setting has a usable default.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return Config{ConfigPath: path}, nil
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
