package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSources is the ordered list of fragment-source files. Earlier files win on duplicate ids.
var DefaultSources = []string{
	"corpus-elements.json",
	"corpus-testprep.json",
	"corpus-medical.json",
	"corpus-legal.json",
	"corpus-science.json",
	"corpus-suneung.json",
}

// Config holds the configuration for the radix service
type Config struct {
	Server ServerConfig
	Corpus CorpusConfig
	Query  QueryConfig
	Log    LogConfig
	Robots RobotsConfig
}

// ServerConfig holds HTTP transport configuration
type ServerConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxConnections int
	CORSOrigins    []string
}

// CorpusConfig describes where the static data lives
type CorpusConfig struct {
	DataDir     string
	Sources     []string
	WordsFile   string
	LoadWorkers int
	Preload     bool
}

// QueryConfig holds result limits and the default language
type QueryConfig struct {
	DefaultLang        string
	SearchLimit        int
	RelatedLimit       int
	WordSearchLimit    int
	ExampleLimit       int
	RenderExampleLimit int
}

type LogConfig struct {
	Level  string
	Format string
}

// RobotsConfig holds the robots.txt rules published by the API
type RobotsConfig struct {
	UserAgent string
	Disallow  []string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           GetStringEnv("SERVER_ADDR", ":8080"),
			ReadTimeout:    GetDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:   GetDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			MaxConnections: GetIntEnv("SERVER_MAX_CONNECTIONS", 0),
			CORSOrigins:    GetListEnv("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Corpus: CorpusConfig{
			DataDir:     GetStringEnv("CORPUS_DATA_DIR", "./data"),
			Sources:     GetListEnv("CORPUS_SOURCES", DefaultSources),
			WordsFile:   GetStringEnv("CORPUS_WORDS_FILE", "words-academic.json"),
			LoadWorkers: GetIntEnv("CORPUS_LOAD_WORKERS", 4),
			Preload:     GetBoolEnv("CORPUS_PRELOAD", true),
		},
		Query: QueryConfig{
			DefaultLang:        GetStringEnv("QUERY_DEFAULT_LANG", "en"),
			SearchLimit:        GetIntEnv("QUERY_SEARCH_LIMIT", 10),
			RelatedLimit:       GetIntEnv("QUERY_RELATED_LIMIT", 5),
			WordSearchLimit:    GetIntEnv("QUERY_WORD_SEARCH_LIMIT", 20),
			ExampleLimit:       GetIntEnv("QUERY_EXAMPLE_LIMIT", 5),
			RenderExampleLimit: GetIntEnv("QUERY_RENDER_EXAMPLE_LIMIT", 3),
		},
		Log: LogConfig{
			Level:  GetStringEnv("LOG_LEVEL", "info"),
			Format: GetStringEnv("LOG_FORMAT", "text"),
		},
		Robots: RobotsConfig{
			UserAgent: GetStringEnv("ROBOTS_USER_AGENT", "*"),
			Disallow:  GetListEnv("ROBOTS_DISALLOW", []string{"/api/v1/"}),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetListEnv splits a comma separated variable, dropping empty items.
// The default is copied so callers can't mutate it.
func GetListEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			return items
		}
	}
	return append([]string(nil), defaultValue...)
}
