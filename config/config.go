package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/b0bbywan/go-mprisctl/logger"
)

const (
	AppName    = "mprisctl"
	AppVersion = "0.1.0"
	envPrefix  = "MPRISCTL"
	stateFile  = "active_player"

	defaultTimeout = 5 * time.Second
)

type Config struct {
	DBus          *DBusConfig
	State         *StateConfig
	LogLevel      logger.Level
	PackageLevels map[string]logger.Level
	Journal       bool
	// Player selects a player for this run instead of the persisted one
	Player string
}

type DBusConfig struct {
	Timeout time.Duration
}

type StateConfig struct {
	Enabled bool
	File    string
}

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"log-level": "LogLevel",
	"timeout":   "dbus.timeout",
	"player":    "player",
	"journal":   "log.journal",
}

// parseLogLevel converts a string to a logger.Level
func parseLogLevel(levelStr string) logger.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return logger.DEBUG
	case "INFO":
		return logger.INFO
	case "WARN":
		return logger.WARN
	case "ERROR":
		return logger.ERROR
	case "FATAL":
		return logger.FATAL
	default:
		return logger.WARN // default
	}
}

// defaultStateFile returns $XDG_STATE_HOME/mprisctl/active_player, falling
// back to ~/.local/state. Empty when no absolute state directory resolves.
func defaultStateFile() string {
	// the environment may have changed since the xdg package initialized
	xdg.Reload()
	if !filepath.IsAbs(xdg.StateHome) {
		return ""
	}
	return filepath.Join(xdg.StateHome, AppName, stateFile)
}

// New loads the configuration from defaults, config files, the environment
// and the given flags, in increasing order of precedence. flags may be nil.
func New(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("LogLevel", "WARN")
	v.SetDefault("log.journal", false)
	v.SetDefault("log.components", map[string]string{})
	v.SetDefault("dbus.timeout", defaultTimeout.String())
	v.SetDefault("state.enabled", true)
	v.SetDefault("state.file", defaultStateFile())
	v.SetDefault("player", "")

	v.SetConfigName("config")                               // name of config file (without extension)
	v.SetConfigType("yaml")                                 // config file format
	v.AddConfigPath(filepath.Join("/etc", AppName))         // Global configuration path
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName)) // User config path

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional, continue with defaults if not found
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound {
			logger.Warn("[config] failed to read config: %v", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		if noState, err := flags.GetBool("no-state"); err == nil && noState {
			v.Set("state.enabled", false)
		}
	}

	timeout := v.GetDuration("dbus.timeout")
	if timeout <= 0 {
		logger.Warn("[config] invalid dbus timeout %q, using %s", v.GetString("dbus.timeout"), defaultTimeout)
		timeout = defaultTimeout
	}

	statecfg := StateConfig{
		Enabled: v.GetBool("state.enabled"),
		File:    v.GetString("state.file"),
	}
	if statecfg.File == "" {
		statecfg.Enabled = false
	}

	packageLevels := map[string]logger.Level{}
	for component, level := range v.GetStringMapString("log.components") {
		packageLevels[component] = parseLogLevel(level)
	}

	cfg := Config{
		DBus:          &DBusConfig{Timeout: timeout},
		State:         &statecfg,
		LogLevel:      parseLogLevel(v.GetString("LogLevel")),
		PackageLevels: packageLevels,
		Journal:       v.GetBool("log.journal"),
		Player:        v.GetString("player"),
	}

	return &cfg, nil
}
