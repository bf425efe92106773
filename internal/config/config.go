// Package config loads the board configuration: where the two record
// files live. Values come from defaults, then an optional YAML file, then
// ASKME_* environment variables, last writer wins.
package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full board configuration.
type Config struct {
	Storage StorageConfig `koanf:"storage"`
}

// StorageConfig names the two backing record files.
type StorageConfig struct {
	UsersFile     string `koanf:"users_file"`
	QuestionsFile string `koanf:"questions_file"`
}

// Load builds the configuration. configPath may be empty, in which case
// only defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("ASKME_", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"storage.users_file":     "users.txt",
		"storage.questions_file": "questions.txt",
	}
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}
	return nil
}

var envKeyMap = map[string]string{
	"ASKME_USERS_FILE":     "storage.users_file",
	"ASKME_QUESTIONS_FILE": "storage.questions_file",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Storage.UsersFile == "" {
		return fmt.Errorf("storage.users_file must not be empty")
	}
	if c.Storage.QuestionsFile == "" {
		return fmt.Errorf("storage.questions_file must not be empty")
	}
	if c.Storage.UsersFile == c.Storage.QuestionsFile {
		return fmt.Errorf("users and questions must use distinct files")
	}
	return nil
}
