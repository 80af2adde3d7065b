package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huanfeng/pacview/pkg/models"
	"github.com/huanfeng/pacview/pkg/utils"
	"github.com/spf13/viper"
)

// DefaultPacmanConf is the configuration file read when nothing else is given
const DefaultPacmanConf = "/etc/pacman.conf"

var defaultSettings = models.Settings{
	ConfigPath: DefaultPacmanConf,
	Format:     "text",
	Color:      true,
	Lang:       "",
	LogLevel:   "warn",
	LogFile:    "",
	LogFormat:  "text",
}

// Formats lists the accepted output formats
var Formats = []string{"text", "json", "yaml", "toml"}

// Defaults returns a copy of the built-in settings
func Defaults() models.Settings {
	return defaultSettings
}

// Load loads settings from file and environment
func Load(settingsPath string) (*models.Settings, error) {
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("config_path", defaultSettings.ConfigPath)
	viper.SetDefault("format", defaultSettings.Format)
	viper.SetDefault("color", defaultSettings.Color)
	viper.SetDefault("lang", defaultSettings.Lang)
	viper.SetDefault("log_level", defaultSettings.LogLevel)
	viper.SetDefault("log_file", defaultSettings.LogFile)
	viper.SetDefault("log_format", defaultSettings.LogFormat)

	if settingsPath != "" {
		viper.SetConfigFile(settingsPath)
	} else {
		viper.SetConfigName("pacview")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pacview"))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		// A missing settings file is fine, defaults apply
	}

	// PACVIEW_CONFIG_PATH, PACVIEW_FORMAT, ...
	viper.SetEnvPrefix("PACVIEW")
	viper.AutomaticEnv()

	var settings models.Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Validate checks settings values that viper cannot type-check
func Validate(settings *models.Settings) error {
	if _, err := utils.ParseLogFormat(settings.LogFormat); err != nil {
		return err
	}
	for _, f := range Formats {
		if settings.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q", settings.Format)
}
