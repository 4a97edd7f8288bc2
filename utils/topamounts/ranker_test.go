package topamounts

import (
	"testing"

	"github.com/Aashish23092/statement-top-amounts/dto"
	"github.com/stretchr/testify/assert"
)

func TestTop(t *testing.T) {
	entries := []dto.AmountEntry{
		{Value: 10, RowIndex: 1},
		{Value: 30, RowIndex: 2},
		{Value: 10, RowIndex: 3},
		{Value: 20, RowIndex: 4},
	}

	got := Top(entries, 3)

	assert.Equal(t, []float64{30, 20, 10}, values(got))
	assert.Equal(t, 1, got[2].RowIndex)
	// input order is preserved
	assert.Equal(t, 2, entries[1].RowIndex)
	assert.Equal(t, 10.0, entries[0].Value)
}

func TestTopShortAndEmpty(t *testing.T) {
	assert.Empty(t, Top(nil, TopN))
	assert.Len(t, Top([]dto.AmountEntry{{Value: 1}}, TopN), 1)
}
