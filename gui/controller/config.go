package controller

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppConfig holds all application configuration
type AppConfig struct {
	// UI settings
	ShowNotifications bool `json:"show_notifications"`
	ConfirmSuspicious bool `json:"confirm_suspicious"` // confirm before launching an .exe without a PE header

	// Window settings
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Browse settings
	DefaultBrowseDir string `json:"default_browse_dir"`

	// Recent targets, most recent first
	RecentTargets []string `json:"recent_targets"`

	// History settings
	HistoryLimit int `json:"history_limit"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	homeDir, _ := os.UserHomeDir()

	return &AppConfig{
		ShowNotifications: true,
		ConfirmSuspicious: true,

		WindowWidth:  600,
		WindowHeight: 400,

		DefaultBrowseDir: homeDir,

		RecentTargets: []string{},

		HistoryLimit: 100,
	}
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, "Library", "Application Support")
	default: // linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, ".config")
		}
	}

	appConfigDir := filepath.Join(configDir, "WUI")
	_ = os.MkdirAll(appConfigDir, 0755)

	return appConfigDir
}

// getConfigPath returns the full path to the config file
func getConfigPath() string {
	return filepath.Join(getConfigDir(), "config.json")
}

// LoadConfig loads configuration from disk or returns defaults
func LoadConfig() *AppConfig {
	config := DefaultConfig()

	data, err := os.ReadFile(getConfigPath())
	if err != nil {
		return config
	}

	if err := json.Unmarshal(data, config); err != nil {
		return DefaultConfig()
	}

	config.ValidateConfig()
	return config
}

// SaveConfig saves configuration to disk
func SaveConfig(config *AppConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(getConfigPath(), data, 0644)
}

// AddRecentTarget adds a target path to the recent list
func (c *AppConfig) AddRecentTarget(path string) {
	// Remove if already exists
	newTargets := make([]string, 0, len(c.RecentTargets)+1)
	newTargets = append(newTargets, path)

	for _, t := range c.RecentTargets {
		if t != path {
			newTargets = append(newTargets, t)
		}
	}

	// Keep only last 10
	if len(newTargets) > 10 {
		newTargets = newTargets[:10]
	}

	c.RecentTargets = newTargets
}

// ValidateConfig validates and normalizes configuration values
func (c *AppConfig) ValidateConfig() {
	if c.WindowWidth < 600 {
		c.WindowWidth = 600
	}
	if c.WindowHeight < 400 {
		c.WindowHeight = 400
	}

	if c.HistoryLimit < 1 {
		c.HistoryLimit = 1
	}
	if c.HistoryLimit > 1000 {
		c.HistoryLimit = 1000
	}

	if c.DefaultBrowseDir == "" {
		homeDir, _ := os.UserHomeDir()
		c.DefaultBrowseDir = homeDir
	}
}

// Clone creates a deep copy of the config
func (c *AppConfig) Clone() *AppConfig {
	clone := *c

	if c.RecentTargets != nil {
		clone.RecentTargets = make([]string, len(c.RecentTargets))
		copy(clone.RecentTargets, c.RecentTargets)
	}

	return &clone
}

// FormatFileSize formats bytes to human readable string
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), []string{"KB", "MB", "GB", "TB"}[exp])
}
