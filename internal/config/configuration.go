package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type AuthConfig struct {
	SessionTTLMinutes int    `yaml:"sessionTTLMinutes"`
	PurgeSchedule     string `yaml:"purgeSchedule"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config.Auth.SessionTTLMinutes == 0 {
		config.Auth.SessionTTLMinutes = 43200
	}
	if config.Auth.PurgeSchedule == "" {
		config.Auth.PurgeSchedule = "@hourly"
	}
	return &config, nil
}
