package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"path/filepath"
	"strings"

	"github.com/Aashish23092/statement-top-amounts/dto"
	"github.com/Aashish23092/statement-top-amounts/utils"
	"github.com/Aashish23092/statement-top-amounts/utils/report"
	"github.com/Aashish23092/statement-top-amounts/utils/topamounts"
)

// minTextLayerChars is the amount of text below which a PDF is treated as a
// scan and sent through OCR.
const minTextLayerChars = 20

// TextRecognizer runs OCR over an image.
type TextRecognizer interface {
	ExtractTextFromBytes(data []byte) (string, error)
}

// TableExtractor turns a whole document into a table, e.g. a remote
// extraction service.
type TableExtractor interface {
	ExtractTables(ctx context.Context, filename string, data []byte) (dto.Table, error)
}

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Export is a rendered report ready to be sent as a download.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

type StatementService struct {
	pdfProcessor PDFProcessor
	recognizer   TextRecognizer
	extractor    TableExtractor
	options      topamounts.Options
}

// NewStatementService wires the ranking pipeline to its document collaborators.
// recognizer and extractor may be nil; the matching inputs are then handled
// locally or rejected.
func NewStatementService(
	pdfProcessor PDFProcessor,
	recognizer TextRecognizer,
	extractor TableExtractor,
	options topamounts.Options,
) *StatementService {
	return &StatementService{
		pdfProcessor: pdfProcessor,
		recognizer:   recognizer,
		extractor:    extractor,
		options:      options,
	}
}

// TopAmounts ranks the five largest debits and credits of table.
func (s *StatementService) TopAmounts(table dto.Table) dto.RankedResult {
	result := topamounts.Rank(table, s.options)

	log.Printf("Ranked %d rows: debit column=%s (%s, %d entries), credit column=%s (%s, %d entries)",
		len(table),
		result.Classification.DebitColumn, result.DebitSource, len(result.Debits),
		result.Classification.CreditColumn, result.CreditSource, len(result.Credits))

	return result
}

// BuildResponse wraps a ranked result for the API, with rank totals.
func (s *StatementService) BuildResponse(requestID string, result dto.RankedResult) *dto.TopAmountsResponse {
	debitTotal, creditTotal := report.Totals(result)

	resp := &dto.TopAmountsResponse{
		RequestID:      requestID,
		Found:          !result.Empty(),
		Debits:         nonNil(result.Debits),
		Credits:        nonNil(result.Credits),
		Classification: result.Classification,
		DebitSource:    result.DebitSource,
		CreditSource:   result.CreditSource,
		DebitTotal:     debitTotal.StringFixed(2),
		CreditTotal:    creditTotal.StringFixed(2),
	}
	if result.Empty() {
		resp.Message = dto.NoEntriesMessage
	}
	return resp
}

// Export renders the ranked result in the requested format.
func (s *StatementService) Export(result dto.RankedResult, format string) (*Export, error) {
	switch strings.ToLower(format) {
	case "", FormatCSV:
		body, err := report.CSV(result)
		if err != nil {
			return nil, err
		}
		return &Export{Filename: report.CSVFilename, ContentType: "text/csv; charset=utf-8", Body: body}, nil
	case FormatXLSX:
		body, err := report.XLSX(result)
		if err != nil {
			return nil, err
		}
		return &Export{
			Filename:    report.XLSXFilename,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        body,
		}, nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// ExtractTable turns an uploaded statement into a table, choosing the reader
// by file extension.
func (s *StatementService) ExtractTable(ctx context.Context, filename string, data []byte, password string) (dto.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	log.Printf("Extracting table from %s (%d bytes)", filename, len(data))

	var rows [][]string
	var err error

	switch ext {
	case ".json":
		var table dto.Table
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		return table, nil
	case ".csv":
		rows, err = ReadCSV(data)
	case ".xlsx":
		rows, err = ReadXLSX(data)
	case ".xls":
		rows, err = ReadXLS(data)
	case ".pdf":
		return s.extractPDF(ctx, filename, data, password)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		rows, err = s.recognizeImage(data)
	default:
		return nil, fmt.Errorf("%w: %s", dto.ErrUnsupportedFile, ext)
	}
	if err != nil {
		return nil, err
	}

	return dto.TableFromStrings(rows), nil
}

func (s *StatementService) extractPDF(ctx context.Context, filename string, data []byte, password string) (dto.Table, error) {
	if password != "" {
		decrypted, err := s.pdfProcessor.Decrypt(data, password)
		if err != nil {
			return nil, err
		}
		data = decrypted
	}

	if s.extractor != nil {
		table, err := s.extractor.ExtractTables(ctx, filename, data)
		switch {
		case err == nil && len(table) > 0:
			return table, nil
		case err == nil:
			log.Printf("Table extractor found no tables in %s, reading locally", filename)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			log.Printf("Table extractor failed for %s, reading locally: %v", filename, err)
		}
	}

	rows, err := s.pdfProcessor.ExtractRows(data)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
	}
	if textLength(rows) >= minTextLayerChars {
		return dto.TableFromStrings(rows), nil
	}

	log.Printf("PDF %s has little or no text layer, attempting image-based OCR", filename)
	if s.recognizer == nil {
		return nil, fmt.Errorf("%s has no text layer and OCR is not configured", filename)
	}

	images, err := s.pdfProcessor.ExtractImages(data, "")
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no pages could be read from %s", filename)
	}

	rows = nil
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			log.Printf("Failed to encode page image %d of %s: %v", i+1, filename, err)
			continue
		}
		text, err := s.recognizer.ExtractTextFromBytes(buf.Bytes())
		if err != nil {
			log.Printf("OCR failed for page image %d of %s: %v", i+1, filename, err)
			continue
		}
		rows = append(rows, utils.ParseTableText(text)...)
	}

	return dto.TableFromStrings(rows), nil
}

func (s *StatementService) recognizeImage(data []byte) ([][]string, error) {
	if s.recognizer == nil {
		return nil, fmt.Errorf("%w: OCR is not configured", dto.ErrUnsupportedFile)
	}
	text, err := s.recognizer.ExtractTextFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("image OCR failed: %w", err)
	}
	return utils.ParseTableText(text), nil
}

func textLength(rows [][]string) int {
	n := 0
	for _, row := range rows {
		for _, cell := range row {
			n += len(strings.TrimSpace(cell))
		}
	}
	return n
}

func nonNil(entries []dto.AmountEntry) []dto.AmountEntry {
	if entries == nil {
		return []dto.AmountEntry{}
	}
	return entries
}
