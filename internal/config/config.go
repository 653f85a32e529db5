package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the console and the simulator read at startup.
type Config struct {
	APIBaseURL   string
	APIPrefix    string
	PIN          string
	PollInterval time.Duration
	StateDBPath  string
	LogLevel     string
	LogFile      string

	SimulatorPort     string
	SimulatorDBPath   string
	SimulatorTimezone string
	SimulatorTick     time.Duration
}

// Defaults mirror the deployment the console was written for: a control
// service on localhost:8000 and the shared operator PIN.
const (
	defaultBaseURL      = "http://localhost:8000"
	defaultAPIPrefix    = "/api/v1"
	defaultPIN          = "2026"
	defaultPollInterval = 5 * time.Second
	defaultStateDB      = "soundctl.db"
	defaultLogLevel     = "info"
	defaultLogFile      = "soundctl.log"
	defaultSimPort      = "8000"
	defaultSimDB        = "simulator.db"
	defaultSimTimezone  = "America/New_York"
	defaultSimTick      = time.Second
)

// Load reads configs/config.yml (optional) plus SOUNDCTL_* env overrides and
// returns the resolved configuration. A missing config file is not an error;
// every key has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")
	v.SetEnvPrefix("soundctl")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.prefix", defaultAPIPrefix)
	v.SetDefault("console.pin", defaultPIN)
	v.SetDefault("console.poll_interval", defaultPollInterval)
	v.SetDefault("console.state_db", defaultStateDB)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.file", defaultLogFile)
	v.SetDefault("simulator.port", defaultSimPort)
	v.SetDefault("simulator.db", defaultSimDB)
	v.SetDefault("simulator.timezone", defaultSimTimezone)
	v.SetDefault("simulator.tick", defaultSimTick)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		APIBaseURL:        v.GetString("api.base_url"),
		APIPrefix:         v.GetString("api.prefix"),
		PIN:               v.GetString("console.pin"),
		PollInterval:      v.GetDuration("console.poll_interval"),
		StateDBPath:       v.GetString("console.state_db"),
		LogLevel:          v.GetString("log.level"),
		LogFile:           v.GetString("log.file"),
		SimulatorPort:     v.GetString("simulator.port"),
		SimulatorDBPath:   v.GetString("simulator.db"),
		SimulatorTimezone: v.GetString("simulator.timezone"),
		SimulatorTick:     v.GetDuration("simulator.tick"),
	}, nil
}
