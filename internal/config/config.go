// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Screen  ScreenConfig  `mapstructure:"screen"`
	Devices DevicesConfig `mapstructure:"devices"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ScreenConfig bounds the virtual mouse's absolute axes.
type ScreenConfig struct {
	Width  int32 `mapstructure:"width"`
	Height int32 `mapstructure:"height"`
}

// DevicesConfig carries the names the virtual devices advertise to the
// rest of the system.
type DevicesConfig struct {
	MouseName   string `mapstructure:"mouse_name"`
	GamepadName string `mapstructure:"gamepad_name"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Overrides the LOG_LEVEL env var when set
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Screen: ScreenConfig{
			Width:  1920,
			Height: 1080,
		},
		Devices: DevicesConfig{
			MouseName:   "GestureLink Virtual Mouse",
			GamepadName: "GestureLink Virtual Gamepad",
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("gesturehid")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "gesturehid"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	viper.SetEnvPrefix("GESTUREHID")
	viper.AutomaticEnv()

	// Set defaults - individual fields so file values merge properly
	viper.SetDefault("screen.width", DefaultConfig.Screen.Width)
	viper.SetDefault("screen.height", DefaultConfig.Screen.Height)
	viper.SetDefault("devices.mouse_name", DefaultConfig.Devices.MouseName)
	viper.SetDefault("devices.gamepad_name", DefaultConfig.Devices.GamepadName)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gesturehid.toml"
	}
	return filepath.Join(home, ".config", "gesturehid", "gesturehid.toml")
}
