package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"didact/internal/ports"
)

// Configuration keys. Each can be overridden by DIDACT_<KEY> in the environment.
const (
	KeyWorkspaceRoot               = "workspace_root"
	KeyExtensionRoot               = "extension_root"
	KeyExtensionsDir               = "extensions_dir"
	KeyDBPath                      = "db_path"
	KeyDisableDefaultNotifications = "disable_default_notifications"
	KeyLogLevel                    = "log_level"
	KeyLogFile                     = "log_file"
	KeySeedDefaults                = "seed_defaults"
	KeyEditor                      = "editor"
)

const (
	envPrefix           = "DIDACT"
	configDirectoryName = "didact"
	configFileName      = "didact.yaml"
)

// LoadOptions controls how configuration is discovered
type LoadOptions struct {
	// ExplicitFilePath, when set, must name a readable configuration file
	ExplicitFilePath string
	// ConfigDirectory overrides $XDG_CONFIG_HOME/didact
	ConfigDirectory string
}

// Config is the loaded configuration. Values are read from the underlying
// viper instance on every call, so environment changes are picked up live.
type Config struct {
	v    *viper.Viper
	file string
}

var _ ports.Settings = (*Config)(nil)

// Load reads the optional configuration file and binds the environment
func Load(options LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	workingDirectory, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determine working directory: %w", err)
	}
	v.SetDefault(KeyWorkspaceRoot, "")
	v.SetDefault(KeyExtensionRoot, workingDirectory)
	v.SetDefault(KeyExtensionsDir, defaultExtensionsDir())
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyDisableDefaultNotifications, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySeedDefaults, true)
	v.SetDefault(KeyEditor, "")

	path, err := resolveConfigPath(options)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read configuration from %s: %w", path, err)
		}
	}
	return &Config{v: v, file: path}, nil
}

func resolveConfigPath(options LoadOptions) (string, error) {
	if options.ExplicitFilePath != "" {
		info, err := os.Stat(options.ExplicitFilePath)
		if err != nil {
			return "", fmt.Errorf("stat configuration %s: %w", options.ExplicitFilePath, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("configuration path %s is a directory", options.ExplicitFilePath)
		}
		return options.ExplicitFilePath, nil
	}

	dir := options.ConfigDirectory
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", nil
		}
		dir = filepath.Join(base, configDirectoryName)
	}
	path := filepath.Join(dir, configFileName)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat configuration %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("configuration path %s is a directory", path)
	}
	return path, nil
}

func defaultExtensionsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vscode", "extensions")
}

// File returns the configuration file in use, empty when none was found
func (c *Config) File() string { return c.file }

// Set overrides a key, typically from a command-line flag
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

func (c *Config) WorkspaceRoot() string { return c.v.GetString(KeyWorkspaceRoot) }
func (c *Config) ExtensionRoot() string { return c.v.GetString(KeyExtensionRoot) }
func (c *Config) ExtensionsDir() string { return c.v.GetString(KeyExtensionsDir) }
func (c *Config) DBPath() string        { return c.v.GetString(KeyDBPath) }
func (c *Config) LogLevel() string      { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogFile() string       { return c.v.GetString(KeyLogFile) }
func (c *Config) SeedDefaults() bool    { return c.v.GetBool(KeySeedDefaults) }
func (c *Config) Editor() string        { return c.v.GetString(KeyEditor) }

// DefaultNotificationsDisabled implements ports.Settings
func (c *Config) DefaultNotificationsDisabled() bool {
	return c.v.GetBool(KeyDisableDefaultNotifications)
}
