package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Batcher struct {
	BatchSize  int   `yaml:"batchSize"`
	RandomSeed int64 `yaml:"randomSeed"`
}

func (b *Batcher) GenerateDefault() {
	if b.BatchSize == 0 {
		b.BatchSize = 1
	}
}

func (b *Batcher) Validate() error {
	if b == nil {
		return fmt.Errorf("batcher config is nil")
	}

	if b.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", b.BatchSize)
	}

	return nil
}

type Reporting struct {
	Sentry *Sentry `yaml:"sentry"`
}

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type Metrics struct {
	Namespace string   `yaml:"namespace"`
	Tags      []string `yaml:"tags"`
}

type Settings struct {
	Batcher   *Batcher   `yaml:"batcher"`
	Reporting *Reporting `yaml:"reporting"`
	Metrics   *Metrics   `yaml:"metrics"`
}

func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("config is nil")
	}

	if s.Batcher == nil {
		return fmt.Errorf("batcher config is nil")
	}

	if err := s.Batcher.Validate(); err != nil {
		return fmt.Errorf("batcher validation failed: %w", err)
	}

	return nil
}

func ReadConfig(fp string) (*Settings, error) {
	bytes, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err = yaml.Unmarshal(bytes, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	if settings.Batcher != nil {
		settings.Batcher.GenerateDefault()
	}

	if err = settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config file: %w", err)
	}

	return &settings, nil
}
