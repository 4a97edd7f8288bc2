package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"github.com/Aashish23092/statement-top-amounts/dto"
	"github.com/Aashish23092/statement-top-amounts/utils/topamounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakePDF struct {
	rows      [][]string
	images    []image.Image
	decrypted []byte
	gotData   []byte
}

func (f *fakePDF) Decrypt(pdfData []byte, password string) ([]byte, error) {
	if password != "secret" {
		return nil, errors.New("wrong password")
	}
	return f.decrypted, nil
}

func (f *fakePDF) ExtractRows(pdfData []byte) ([][]string, error) {
	f.gotData = pdfData
	return f.rows, nil
}

func (f *fakePDF) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	return f.images, nil
}

type fakeRecognizer struct {
	text  string
	calls int
}

func (f *fakeRecognizer) ExtractTextFromBytes(data []byte) (string, error) {
	f.calls++
	return f.text, nil
}

type fakeExtractor struct {
	table dto.Table
	err   error
}

func (f *fakeExtractor) ExtractTables(ctx context.Context, filename string, data []byte) (dto.Table, error) {
	return f.table, f.err
}

const statementCSV = `Date,Description,Debit,Credit
01/04/2023,Opening balance,,1000.00
02/04/2023,ATM Withdrawal,500.00
05/04/2023,Salary Credit,,"25,000.00"
`

func TestTopAmountsAndResponse(t *testing.T) {
	s := NewStatementService(&fakePDF{}, nil, nil, topamounts.Options{})

	table, err := s.ExtractTable(context.Background(), "statement.csv", []byte(statementCSV), "")
	require.NoError(t, err)

	result := s.TopAmounts(table)
	resp := s.BuildResponse("req-1", result)

	assert.True(t, resp.Found)
	assert.Empty(t, resp.Message)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "500.00", resp.DebitTotal)
	assert.Equal(t, "26000.00", resp.CreditTotal)
	require.Len(t, resp.Credits, 2)
	assert.Equal(t, "25,000.00", resp.Credits[0].RawText)
}

func TestBuildResponseEmpty(t *testing.T) {
	s := NewStatementService(&fakePDF{}, nil, nil, topamounts.Options{})

	resp := s.BuildResponse("req-2", s.TopAmounts(dto.TableFromStrings([][]string{{"nothing here"}})))

	assert.False(t, resp.Found)
	assert.Equal(t, dto.NoEntriesMessage, resp.Message)
	assert.NotNil(t, resp.Debits)
	assert.NotNil(t, resp.Credits)
	assert.Equal(t, "0.00", resp.DebitTotal)
}

func TestExport(t *testing.T) {
	s := NewStatementService(&fakePDF{}, nil, nil, topamounts.Options{})
	table, err := s.ExtractTable(context.Background(), "statement.csv", []byte(statementCSV), "")
	require.NoError(t, err)
	result := s.TopAmounts(table)

	csvExport, err := s.Export(result, "")
	require.NoError(t, err)
	assert.Equal(t, "top5_debit_credit.csv", csvExport.Filename)
	assert.Equal(t, "debit,credit\n\"500.00\",\"25,000.00\"\n\"\",\"1000.00\"", string(csvExport.Body))

	xlsxExport, err := s.Export(result, "XLSX")
	require.NoError(t, err)
	assert.Equal(t, "top5_debit_credit.xlsx", xlsxExport.Filename)
	assert.NotEmpty(t, xlsxExport.Body)

	_, err = s.Export(result, "pdf")
	assert.Error(t, err)

	_, err = s.Export(dto.RankedResult{}, FormatCSV)
	assert.ErrorIs(t, err, dto.ErrNothingToExport)
}

func TestExtractTableXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Dr", "Cr"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2024-01-09", "150.00"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	s := NewStatementService(&fakePDF{}, nil, nil, topamounts.Options{})
	table, err := s.ExtractTable(context.Background(), "Statement.XLSX", buf.Bytes(), "")
	require.NoError(t, err)

	require.Len(t, table, 2)
	assert.Equal(t, "Dr", table[0].At(1).Text())
	assert.Equal(t, "150.00", table[1].At(1).Text())
}

func TestExtractTableJSON(t *testing.T) {
	s := NewStatementService(&fakePDF{}, nil, nil, topamounts.Options{})

	table, err := s.ExtractTable(context.Background(), "table.json", []byte(`[["Date","Debit"],["01/01/2024",12.5]]`), "")
	require.NoError(t, err)
	assert.Equal(t, "12.5", table[1].At(1).Text())

	_, err = s.ExtractTable(context.Background(), "table.json", []byte(`{"rows":[]}`), "")
	assert.ErrorIs(t, err, dto.ErrMalformedTable)
}

func TestExtractTableUnsupported(t *testing.T) {
	s := NewStatementService(&fakePDF{}, nil, nil, topamounts.Options{})

	_, err := s.ExtractTable(context.Background(), "statement.docx", []byte("x"), "")
	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)

	_, err = s.ExtractTable(context.Background(), "scan.png", []byte("x"), "")
	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)
}

func TestExtractTableImage(t *testing.T) {
	ocr := &fakeRecognizer{text: "Date   Debit   Credit\n01/01/2024   100.00\n"}
	s := NewStatementService(&fakePDF{}, ocr, nil, topamounts.Options{})

	table, err := s.ExtractTable(context.Background(), "scan.jpg", []byte("jpeg"), "")
	require.NoError(t, err)

	assert.Equal(t, 1, ocr.calls)
	require.Len(t, table, 2)
	assert.Equal(t, "100.00", table[1].At(1).Text())
}

func TestExtractPDFTextLayer(t *testing.T) {
	pdf := &fakePDF{rows: [][]string{{"Date", "Debit", "Credit"}, {"01/01/2024", "1,000.00", ""}}}
	ocr := &fakeRecognizer{}
	s := NewStatementService(pdf, ocr, nil, topamounts.Options{})

	table, err := s.ExtractTable(context.Background(), "statement.pdf", []byte("%PDF"), "")
	require.NoError(t, err)

	assert.Len(t, table, 2)
	assert.Equal(t, 0, ocr.calls)
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	pdf := &fakePDF{
		rows:   [][]string{{"p1"}},
		images: []image.Image{image.NewGray(image.Rect(0, 0, 4, 4))},
	}
	ocr := &fakeRecognizer{text: "Date  Debit  Credit\n02/02/2024  75.00"}
	s := NewStatementService(pdf, ocr, nil, topamounts.Options{})

	table, err := s.ExtractTable(context.Background(), "scan.pdf", []byte("%PDF"), "")
	require.NoError(t, err)

	assert.Equal(t, 1, ocr.calls)
	require.Len(t, table, 2)
	assert.Equal(t, "Date", table[0].At(0).Text())
}

func TestExtractPDFWithPassword(t *testing.T) {
	pdf := &fakePDF{
		decrypted: []byte("%PDF-plain"),
		rows:      [][]string{{"Date", "Debit", "Credit"}, {"01/01/2024", "1,000.00", ""}},
	}
	s := NewStatementService(pdf, nil, nil, topamounts.Options{})

	_, err := s.ExtractTable(context.Background(), "locked.pdf", []byte("%PDF-locked"), "secret")
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte("%PDF-plain"), pdf.gotData))

	_, err = s.ExtractTable(context.Background(), "locked.pdf", []byte("%PDF-locked"), "guess")
	assert.Error(t, err)
}

func TestExtractPDFPrefersRemoteExtractor(t *testing.T) {
	remote := &fakeExtractor{table: dto.TableFromStrings([][]string{{"Date", "Debit"}})}
	pdf := &fakePDF{}
	s := NewStatementService(pdf, nil, remote, topamounts.Options{})

	table, err := s.ExtractTable(context.Background(), "statement.pdf", []byte("%PDF"), "")
	require.NoError(t, err)
	assert.Len(t, table, 1)
	assert.Nil(t, pdf.gotData)

	remote.err = errors.New("connection refused")
	pdf.rows = [][]string{{"Date", "Narration", "Debit", "Credit"}}
	table, err = s.ExtractTable(context.Background(), "statement.pdf", []byte("%PDF"), "")
	require.NoError(t, err)
	assert.Equal(t, "Narration", table[0].At(1).Text())
}

func TestExtractPDFRemoteFindsNoTables(t *testing.T) {
	remote := &fakeExtractor{table: dto.Table{}}
	pdf := &fakePDF{
		rows:   [][]string{{"p1"}},
		images: []image.Image{image.NewGray(image.Rect(0, 0, 4, 4))},
	}
	ocr := &fakeRecognizer{text: "Date  Debit  Credit\n02/02/2024  75.00"}
	s := NewStatementService(pdf, ocr, remote, topamounts.Options{})

	table, err := s.ExtractTable(context.Background(), "scan.pdf", []byte("%PDF"), "")
	require.NoError(t, err)

	assert.Equal(t, 1, ocr.calls)
	require.Len(t, table, 2)
	assert.Equal(t, "75.00", table[1].At(1).Text())
}
