package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort            string
	TesseractDataPath     string
	MaxFileSize           int64
	TableExtractorURL     string
	TableExtractorTimeout time.Duration
	SignPolicy            string
}

func LoadConfig() *Config {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	maxFileMB := int64(10)
	if v := os.Getenv("MAX_FILE_SIZE_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxFileMB = n
		} else {
			log.Printf("Ignoring invalid MAX_FILE_SIZE_MB=%q", v)
		}
	}

	timeout := 60 * time.Second
	if v := os.Getenv("TABLE_EXTRACTOR_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		} else {
			log.Printf("Ignoring invalid TABLE_EXTRACTOR_TIMEOUT=%q", v)
		}
	}

	signPolicy := os.Getenv("SIGN_POLICY")
	if signPolicy == "" {
		signPolicy = "legacy"
	}

	return &Config{
		ServerPort:            serverPort,
		TesseractDataPath:     tesseractDataPath,
		MaxFileSize:           maxFileMB * 1024 * 1024,
		TableExtractorURL:     os.Getenv("TABLE_EXTRACTOR_URL"),
		TableExtractorTimeout: timeout,
		SignPolicy:            signPolicy,
	}
}
