package main

import (
	"log"

	"github.com/Aashish23092/statement-top-amounts/client"
	"github.com/Aashish23092/statement-top-amounts/config"
	"github.com/Aashish23092/statement-top-amounts/handler"
	"github.com/Aashish23092/statement-top-amounts/service"
	"github.com/Aashish23092/statement-top-amounts/utils/topamounts"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	signPolicy, err := topamounts.ParseSignPolicy(cfg.SignPolicy)
	if err != nil {
		log.Fatalf("Invalid SIGN_POLICY: %v", err)
	}

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()
	log.Println("TESSDATA_PREFIX set to:", cfg.TesseractDataPath)

	// The remote table extractor is optional; PDFs are read locally without it
	var extractor service.TableExtractor
	if cfg.TableExtractorURL != "" {
		extractor = client.NewTableClient(cfg.TableExtractorURL, cfg.TableExtractorTimeout)
	}

	// Initialize service layer
	statementService := service.NewStatementService(
		service.NewPDFProcessor(),
		tesseractClient,
		extractor,
		topamounts.Options{SignPolicy: signPolicy},
	)

	// Initialize handler layer
	statementHandler := handler.NewStatementHandler(statementService, cfg.MaxFileSize)
	router := handler.NewRouter(statementHandler)

	// Start server
	log.Printf("Starting Statement Top Amounts Service on port %s (sign policy %s)", cfg.ServerPort, signPolicy)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
