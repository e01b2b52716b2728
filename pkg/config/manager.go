package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SQU1D_WINDOW_WIDTH.
const EnvPrefix = "SQU1D"

// Manager handles configuration loading, watching and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	log       zerolog.Logger
}

// NewManager creates a configuration manager. When file is empty the
// manager looks for config.toml in ConfigDir and the working directory.
func NewManager(file string) (*Manager, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		dir, err := ConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		v.AddConfigPath(dir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{viper: v, log: zerolog.Nop()}, nil
}

// SetLogger configures the logger used for reload diagnostics.
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.log = l
}

// Load reads the configuration file, if any, and the environment.
// A missing file in the search path is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

func (m *Manager) decode() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Renderer.Backend = strings.ToLower(cfg.Renderer.Backend)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	c := *m.config
	c.Renderer.Args = append([]string(nil), m.config.Renderer.Args...)
	return &c
}

// ConfigFileUsed returns the path of the loaded file, or "".
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// Set overrides a single key, as a command-line flag would.
func (m *Manager) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.Set(key, value)
	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// OnConfigChange registers a callback run after every successful reload.
// Callbacks run on the watcher goroutine.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// Watch starts watching the loaded config file and reloads it on change.
// Without a config file there is nothing to watch and Watch does nothing.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching || m.viper.ConfigFileUsed() == "" {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		m.reload(e.Name)
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) reload(name string) {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		m.log.Warn().Err(err).Str("file", name).Msg("failed to reload config")
		return
	}
	cfg, err := m.decode()
	if err != nil {
		m.mu.Unlock()
		m.log.Warn().Err(err).Str("file", name).Msg("ignoring invalid config")
		return
	}
	m.config = cfg
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	m.log.Info().Str("file", name).Msg("config reloaded")
	for _, callback := range callbacks {
		c := *cfg
		callback(&c)
	}
}
