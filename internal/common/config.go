package common

import (
	"os"
	"strconv"
	"time"
)

// Classification modes for the reason classifier chain.
const (
	ModeRemote    = "remote"
	ModeLocal     = "local"
	ModeHeuristic = "heuristic"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Classifier ClassifierConfig
	Extraction ExtractionConfig
	Storage    StorageConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	DefaultMachine string
	OutputDir      string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string
}

// ClassifierConfig holds reason-classifier configuration
type ClassifierConfig struct {
	Mode          string // remote | local | heuristic
	RemoteAPIKey  string
	RemoteBaseURL string
	RemoteModel   string
	LocalBaseURL  string
	LocalModel    string
	Timeout       time.Duration
}

// ExtractionConfig holds extraction-pipeline configuration
type ExtractionConfig struct {
	Version   string
	ChunkSize int
}

// StorageConfig holds blob-store configuration
type StorageConfig struct {
	FileStoreDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		App: AppConfig{
			DefaultMachine: getEnv("DEFAULT_MACHINE", "KHS_Filler"),
			OutputDir:      getEnv("OUTPUT_DIR", "./output"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./manuals.db"),
		},
		Classifier: ClassifierConfig{
			Mode:          getEnv("REASON_CLASSIFICATION_MODE", ModeRemote),
			RemoteAPIKey:  getEnv("GROQ_API_KEY", ""),
			RemoteBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			RemoteModel:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			LocalBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			LocalModel:    getEnv("OLLAMA_MODEL", "llama3.2:3b"),
			Timeout:       getEnvAsDuration("CLASSIFIER_TIMEOUT", 45*time.Second),
		},
		Extraction: ExtractionConfig{
			Version:   getEnv("EXTRACTION_VERSION", "v4-parameter-noise-filter"),
			ChunkSize: getEnvAsInt("CHUNK_SIZE", 4000),
		},
		Storage: StorageConfig{
			FileStoreDir: getEnv("FILE_STORAGE_DIR", "./pdf_store"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "DB_PATH is required", ErrInvalidInput)
	}
	switch c.Classifier.Mode {
	case ModeRemote, ModeLocal, ModeHeuristic:
	default:
		return NewAppError("CONFIG_ERROR", "REASON_CLASSIFICATION_MODE must be remote, local or heuristic", ErrInvalidInput)
	}
	if c.Classifier.Mode == ModeRemote && c.Classifier.RemoteAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "GROQ_API_KEY is required in remote mode", ErrInvalidInput)
	}
	if c.Extraction.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
