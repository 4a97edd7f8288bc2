package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	Decrypt(pdfData []byte, password string) ([]byte, error)
	ExtractRows(pdfData []byte) ([][]string, error)
	ExtractImages(pdfData []byte, password string) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// Decrypt removes password protection so the text layer can be read.
func (p *pdfProcessor) Decrypt(pdfData []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
		return nil, fmt.Errorf("failed to decrypt pdf: %w", err)
	}
	return out.Bytes(), nil
}

// ExtractRows reads the text layer page by page, one row per text line. Words
// separated by a gap wider than their font size start a new cell.
func (p *pdfProcessor) ExtractRows(pdfData []byte) ([][]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, err
	}

	var rows [][]string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		textRows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}
		for _, row := range textRows {
			cells := splitTextRow(row.Content)
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
	}
	return rows, nil
}

func splitTextRow(words pdf.TextHorizontal) []string {
	sorted := make([]pdf.Text, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []string
	var current strings.Builder
	var prevEnd float64

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			cells = append(cells, s)
		}
		current.Reset()
	}

	for i, word := range sorted {
		if i > 0 {
			gap := word.X - prevEnd
			switch {
			case gap > word.FontSize:
				flush()
			case gap > word.FontSize*0.2:
				current.WriteString(" ")
			}
		}
		current.WriteString(word.S)
		prevEnd = word.X + word.W
	}
	flush()

	return cells
}

func (p *pdfProcessor) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	// Create a temporary directory for extraction
	tempDir, err := os.MkdirTemp("", "pdf_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
	}

	// nil selects every page
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []image.Image
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		imgFile, err := os.Open(filepath.Join(tempDir, file.Name()))
		if err != nil {
			continue
		}

		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	return images, nil
}
