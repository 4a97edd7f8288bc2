package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVRagged(t *testing.T) {
	rows, err := ReadCSV([]byte("Date,Debit,Credit\n01/01/2024,5\n02/01/2024,,7,extra\n"))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 4)
}

func TestReadXLSInvalid(t *testing.T) {
	_, err := ReadXLS([]byte("not a workbook"))
	assert.Error(t, err)
}

func TestReadXLSXInvalid(t *testing.T) {
	_, err := ReadXLSX([]byte("not a workbook"))
	assert.Error(t, err)
}
