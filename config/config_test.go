package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatcher_Validate(t *testing.T) {
	// nil
	{
		var b *Batcher
		assert.ErrorContains(t, b.Validate(), "batcher config is nil")
	}
	// batch size not set
	{
		b := &Batcher{}
		assert.ErrorContains(t, b.Validate(), "batch size must be at least 1, got 0")
	}
	// negative batch size
	{
		b := &Batcher{BatchSize: -2}
		assert.ErrorContains(t, b.Validate(), "batch size must be at least 1, got -2")
	}
	// valid
	{
		b := &Batcher{BatchSize: 32, RandomSeed: 42}
		assert.NoError(t, b.Validate())
	}
}

func TestBatcher_GenerateDefault(t *testing.T) {
	// zero batch size defaults to 1
	{
		b := &Batcher{}
		b.GenerateDefault()
		assert.Equal(t, 1, b.BatchSize)
	}
	// explicit batch size is kept
	{
		b := &Batcher{BatchSize: 16}
		b.GenerateDefault()
		assert.Equal(t, 16, b.BatchSize)
	}
}

func TestSettings_Validate(t *testing.T) {
	// nil
	{
		var s *Settings
		assert.ErrorContains(t, s.Validate(), "config is nil")
	}
	// missing batcher section
	{
		s := &Settings{}
		assert.ErrorContains(t, s.Validate(), "batcher config is nil")
	}
	// valid
	{
		s := &Settings{Batcher: &Batcher{BatchSize: 8}}
		assert.NoError(t, s.Validate())
	}
}

func TestReadConfig(t *testing.T) {
	// file does not exist
	{
		_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read config file")
	}
	// malformed yaml
	{
		fp := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(fp, []byte("batcher: ["), 0644))
		_, err := ReadConfig(fp)
		assert.ErrorContains(t, err, "failed to unmarshal config file")
	}
	// batch size defaults when omitted
	{
		fp := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(fp, []byte(`
batcher:
  randomSeed: 42
`), 0644))
		settings, err := ReadConfig(fp)
		assert.NoError(t, err)
		assert.Equal(t, 1, settings.Batcher.BatchSize)
		assert.Equal(t, int64(42), settings.Batcher.RandomSeed)
	}
	// fully specified
	{
		fp := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(fp, []byte(`
batcher:
  batchSize: 64
  randomSeed: 7
metrics:
  namespace: seqtrain
  tags:
    - env:test
reporting:
  sentry:
    dsn: https://foo@sentry.example.com/1
`), 0644))
		settings, err := ReadConfig(fp)
		assert.NoError(t, err)
		assert.Equal(t, 64, settings.Batcher.BatchSize)
		assert.Equal(t, int64(7), settings.Batcher.RandomSeed)
		assert.Equal(t, "seqtrain", settings.Metrics.Namespace)
		assert.Equal(t, []string{"env:test"}, settings.Metrics.Tags)
		assert.Equal(t, "https://foo@sentry.example.com/1", settings.Reporting.Sentry.DSN)
	}
	// negative batch size fails validation
	{
		fp := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(fp, []byte(`
batcher:
  batchSize: -1
`), 0644))
		_, err := ReadConfig(fp)
		assert.ErrorContains(t, err, "failed to validate config file")
	}
}
