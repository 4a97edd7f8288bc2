package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableUnmarshalCells(t *testing.T) {
	var table Table
	require.NoError(t, json.Unmarshal([]byte(`[["01/01/2024", 1000.00, null, true], null, [1.5e3, 2E4, -3e-2]]`), &table))

	require.Len(t, table, 3)
	assert.Equal(t, "01/01/2024", table[0].At(0).Text())
	assert.Equal(t, "1000.00", table[0].At(1).Text())
	assert.False(t, table[0].At(2).Present())
	assert.Equal(t, "true", table[0].At(3).Text())
	assert.Empty(t, table[1])

	assert.Equal(t, "1500", table[2].At(0).Text())
	assert.Equal(t, "20000", table[2].At(1).Text())
	assert.Equal(t, "-0.03", table[2].At(2).Text())
}

func TestTableUnmarshalMalformed(t *testing.T) {
	for _, body := range []string{`"rows"`, `[["ok"], 5]`, `[[{"nested": true}]]`, `[[[1]]]`} {
		var table Table
		err := json.Unmarshal([]byte(body), &table)
		assert.ErrorIs(t, err, ErrMalformedTable, body)
	}
}

func TestTopAmountsRequestValidate(t *testing.T) {
	var missing TopAmountsRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.ErrorIs(t, missing.Validate(), ErrMissingTable)

	var empty TopAmountsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"table": []}`), &empty))
	assert.NoError(t, empty.Validate())
	assert.Empty(t, empty.Table)
}
