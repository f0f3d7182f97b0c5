package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Github   GithubConfig
	Storage  StorageConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey        string
	AnalysisModel string
	SummaryModel  string
}

type GithubConfig struct {
	// Token is optional. When set it is attached to every GitHub request
	// to raise the anonymous rate limit.
	Token string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type AnalysisConfig struct {
	// MaxRepoFiles caps how many files are fetched from a single repository.
	MaxRepoFiles int
	// MaxSummaryChars is the per-file truncation budget for summarization.
	MaxSummaryChars int
	// MaxRepoAnalysisChars is the per-file truncation budget for the
	// standalone repository review.
	MaxRepoAnalysisChars int
	// TopRepoCount is how many recently updated repositories get their
	// files summarized for the candidate assessment.
	TopRepoCount int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:        getEnv("GEMINI_API_KEY", ""),
			AnalysisModel: getEnv("GEMINI_ANALYSIS_MODEL", "gemini-2.5-flash"),
			SummaryModel:  getEnv("GEMINI_SUMMARY_MODEL", "gemini-2.5-flash-lite"),
		},
		Github: GithubConfig{
			Token: getEnv("GITHUB_TOKEN", ""),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 16777216),
		},
		Analysis: AnalysisConfig{
			MaxRepoFiles:         getEnvAsInt("MAX_REPO_FILES", 20),
			MaxSummaryChars:      getEnvAsInt("MAX_SUMMARY_CHARS", 2000),
			MaxRepoAnalysisChars: getEnvAsInt("MAX_REPO_ANALYSIS_CHARS", 5000),
			TopRepoCount:         getEnvAsInt("TOP_REPO_COUNT", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
