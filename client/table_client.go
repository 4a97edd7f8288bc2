package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Aashish23092/statement-top-amounts/dto"
)

// TableClient calls the external table extraction service, which turns an
// uploaded statement into a grid of cell values.
type TableClient struct {
	url        string
	httpClient *http.Client
}

// NewTableClient creates a client for the extraction endpoint at url
func NewTableClient(url string, timeout time.Duration) *TableClient {
	log.Printf("Table extractor configured at %s (timeout %s)", url, timeout)

	return &TableClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type extractTablesResponse struct {
	Tables   dto.Table `json:"tables"`
	Filename string    `json:"filename"`
	FileType string    `json:"file_type"`
	Error    string    `json:"error"`
}

// ExtractTables uploads the document as multipart field "file" and decodes the
// returned table.
func (c *TableClient) ExtractTables(ctx context.Context, filename string, data []byte) (dto.Table, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call table extractor: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read table extractor response: %w", err)
	}

	var result extractTablesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("table extractor returned status %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("failed to decode table extractor response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := result.Error
		if msg == "" {
			msg = string(respBody)
		}
		return nil, fmt.Errorf("table extractor returned status %d: %s", resp.StatusCode, msg)
	}

	log.Printf("Table extractor returned %d rows for %s", len(result.Tables), filename)
	return result.Tables, nil
}
