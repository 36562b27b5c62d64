package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestSplitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"TP.DK.USD.A", []string{"TP.DK.USD.A"}},
		{"TP.DK.USD.A,TP.DK.EUR.A", []string{"TP.DK.USD.A", "TP.DK.EUR.A"}},
		{"A,A,B", []string{"A", "A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SplitCodes(tt.input))
		})
	}
}

func TestTable_Empty(t *testing.T) {
	t.Parallel()

	var nilTable *Table
	assert.True(t, nilTable.Empty())
	assert.True(t, (&Table{Columns: []string{"Tarih"}}).Empty())
	assert.True(t, (&Table{Rows: [][]json.RawMessage{{}, {}}}).Empty())
	assert.False(t, (&Table{Columns: []string{"Tarih"}, Rows: [][]json.RawMessage{{raw(`"01-01-2024"`)}}}).Empty())
}

func TestTable_RenameAndRecords(t *testing.T) {
	t.Parallel()

	table := &Table{
		Columns: []string{"Tarih", "TP_DK_USD_A", "TP_DK_EUR_A"},
		Rows: [][]json.RawMessage{
			{raw(`"02-01-2024"`), raw(`"29.5"`), raw(`"32.6"`)},
			{raw(`"03-01-2024"`), raw(`"29.6"`)},
		},
	}
	table.Rename(map[string]string{"TP_DK_USD_A": "TP.DK.USD.A"})

	records := table.Records()
	require.Len(t, records, 2)

	b, err := json.Marshal(fieldNames(records[0]))
	require.NoError(t, err)
	assert.JSONEq(t, `["Tarih","TP.DK.USD.A","TP_DK_EUR_A"]`, string(b))

	v, ok := records[1].Get("TP.DK.USD.A")
	require.True(t, ok)
	assert.Equal(t, `"29.6"`, string(v))

	v, ok = records[1].Get("TP_DK_EUR_A")
	require.True(t, ok)
	assert.Equal(t, "null", string(v))

	_, ok = records[0].Get("missing")
	assert.False(t, ok)
}

func TestTable_RecordsEmpty(t *testing.T) {
	t.Parallel()

	var table *Table
	records := table.Records()
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func fieldNames(r Record) []string {
	out := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		out = append(out, f.Name)
	}
	return out
}
