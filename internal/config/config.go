package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Bot      Bot    `yaml:"bot"`
}

type Bot struct {
	// Iteration budgets for the MCTS difficulty tiers.
	EasyIterations int `yaml:"easy-iterations" env-default:"200"`
	HardIterations int `yaml:"hard-iterations" env-default:"10000"`

	// UCB1 exploration constant, sqrt(2) by default.
	Exploration float64 `yaml:"exploration" env-default:"1.414"`

	// Seed for the bot's random source. 0 means seed from the clock.
	Seed uint64 `yaml:"seed" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
