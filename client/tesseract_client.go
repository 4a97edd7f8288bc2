package client

import (
	"fmt"
	"log"

	"github.com/otiai10/gosseract/v2"
)

type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

func (tc *TesseractClient) newClient() (*gosseract.Client, error) {
	client := gosseract.NewClient()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}
	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	// Keep runs of spaces so column gaps survive recognition
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set variable: %w", err)
	}
	// Single uniform block of text: a statement table
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return client, nil
}

// ExtractTextFromBytes runs OCR on an encoded image held in memory
func (tc *TesseractClient) ExtractTextFromBytes(data []byte) (string, error) {
	client, err := tc.newClient()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
