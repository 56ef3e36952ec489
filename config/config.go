package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultFilterYear        = 2023
	DefaultWaitTimeSeconds   = 20
	DefaultClientIdleSeconds = 10
	DefaultLogLevel          = "debug"
)

type Config struct {
	Aws                   *AWSsqsConfig    `yaml:"aws"`
	Directory             *DirectoryConfig `yaml:"directory"`
	LogFilePath           string           `yaml:"logFile"`
	LogLevel              string           `yaml:"logLevel"`
	ClientsInputPath      string           `yaml:"clientsInputPath"`
	ClientIdleSeconds     int64            `yaml:"clientIdleSeconds"`
	ServerWaitTimeSeconds int64            `yaml:"serverWaitTimeSeconds"`
}

type AWSsqsConfig struct {
	QueueUrl     string `yaml:"url"`
	Region       string `yaml:"region"`
	ClientId     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	ClientToken  string `yaml:"clientToken"`
}

type DirectoryConfig struct {
	// Year used by the filter when a command does not name one.
	FilterYear int `yaml:"filterYear"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	// Substitute from environemental vars
	confContent := []byte(os.ExpandEnv(string(data)))

	config := &Config{}

	err := yaml.Unmarshal(confContent, config)
	if err != nil {
		return nil, err
	}
	config.setDefaults()

	return config, nil
}

func (c *Config) setDefaults() {
	if c.Aws == nil {
		c.Aws = &AWSsqsConfig{}
	}
	if c.Directory == nil {
		c.Directory = &DirectoryConfig{}
	}
	if c.Directory.FilterYear == 0 {
		c.Directory.FilterYear = DefaultFilterYear
	}
	if c.ServerWaitTimeSeconds == 0 {
		c.ServerWaitTimeSeconds = DefaultWaitTimeSeconds
	}
	if c.ClientIdleSeconds == 0 {
		c.ClientIdleSeconds = DefaultClientIdleSeconds
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
