package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "KHS_Filler", cfg.App.DefaultMachine)
	assert.Equal(t, "./manuals.db", cfg.Database.Path)
	assert.Equal(t, ModeRemote, cfg.Classifier.Mode)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Classifier.RemoteModel)
	assert.Equal(t, 45*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, "v4-parameter-noise-filter", cfg.Extraction.Version)
	assert.Equal(t, 4000, cfg.Extraction.ChunkSize)
	assert.Equal(t, "./pdf_store", cfg.Storage.FileStoreDir)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("REASON_CLASSIFICATION_MODE", "heuristic")
	t.Setenv("CHUNK_SIZE", "2000")
	t.Setenv("CLASSIFIER_TIMEOUT", "10s")
	t.Setenv("DEFAULT_MACHINE", "KHS_Capper")

	cfg := LoadConfig()

	assert.Equal(t, ModeHeuristic, cfg.Classifier.Mode)
	assert.Equal(t, 2000, cfg.Extraction.ChunkSize)
	assert.Equal(t, 10*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, "KHS_Capper", cfg.App.DefaultMachine)
}

func TestLoadConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "not-a-number")
	cfg := LoadConfig()
	assert.Equal(t, 4000, cfg.Extraction.ChunkSize)
}

func TestValidateRemoteModeRequiresKey(t *testing.T) {
	cfg := LoadConfig()
	cfg.Classifier.Mode = ModeRemote
	cfg.Classifier.RemoteAPIKey = ""

	err := cfg.Validate()
	require.Error(t, err)

	cfg.Classifier.RemoteAPIKey = "gsk_test"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := LoadConfig()
	cfg.Classifier.Mode = "psychic"
	assert.Error(t, cfg.Validate())
}

func TestValidateHeuristicModeNeedsNoKey(t *testing.T) {
	cfg := LoadConfig()
	cfg.Classifier.Mode = ModeHeuristic
	cfg.Classifier.RemoteAPIKey = ""
	assert.NoError(t, cfg.Validate())
}
