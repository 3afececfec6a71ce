// Package config loads service configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/limaJavier/unitime/pkg/model"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`

	Scheduling struct {
		Days           []string `yaml:"days"`
		WeeklyCapHours float64  `yaml:"weekly_cap_hours"`
	} `yaml:"scheduling"`
}

// Load reads the configuration file when it exists, then applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(path); err == nil {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "5001"
	config.Server.Mode = "development"

	config.Logging.Level = "info"

	config.Scheduling.Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	config.Scheduling.WeeklyCapHours = float64(model.DefaultWeeklyCapMinutes) / 60
}

func loadFromEnv(config *Config) {
	if port := os.Getenv("UNITIME_PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("UNITIME_MODE"); mode != "" {
		config.Server.Mode = mode
	}
	if level := os.Getenv("UNITIME_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if pretty := os.Getenv("UNITIME_LOG_PRETTY"); pretty != "" {
		config.Logging.Pretty = pretty == "true" || pretty == "1"
	}
}

func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if config.Scheduling.WeeklyCapHours <= 0 {
		return fmt.Errorf("weekly cap must be positive: %v", config.Scheduling.WeeklyCapHours)
	}
	if len(config.Scheduling.Days) == 0 {
		return fmt.Errorf("at least one scheduling day is required")
	}
	for _, day := range config.Scheduling.Days {
		if _, err := model.ParseDay(day); err != nil {
			return err
		}
	}
	return nil
}

// Days converts the configured day names into engine days.
func (config *Config) Days() []model.Day {
	days := make([]model.Day, 0, len(config.Scheduling.Days))
	for _, name := range config.Scheduling.Days {
		day, err := model.ParseDay(name)
		if err != nil {
			continue // validated at load time
		}
		days = append(days, day)
	}
	return days
}

// WeeklyCapMinutes converts the configured cap to engine minutes.
func (config *Config) WeeklyCapMinutes() int {
	return int(config.Scheduling.WeeklyCapHours * 60)
}
