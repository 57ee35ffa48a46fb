package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecords(t *testing.T) {
	header := []string{"name", "brand", "price"}

	t.Run("pads short records", func(t *testing.T) {
		tbl, err := FromRecords(header, [][]string{
			{"iphone 15 pro", "apple", "999"},
			{"redmi note 12", "xiaomi"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, tbl.Len())
		assert.Equal(t, Row{"name": "redmi note 12", "brand": "xiaomi", "price": ""}, tbl.Rows[1])
	})

	t.Run("rejects long records", func(t *testing.T) {
		_, err := FromRecords(header, [][]string{{"a", "b", "c", "d"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 1 has 4 fields")
	})

	t.Run("no records", func(t *testing.T) {
		tbl, err := FromRecords(header, nil)
		require.NoError(t, err)
		assert.NotNil(t, tbl.Rows)
		assert.Equal(t, 0, tbl.Len())
	})
}

func TestTable_Limit(t *testing.T) {
	tbl := New([]string{"id"}, []Row{{"id": "1"}, {"id": "2"}, {"id": "3"}})

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"unlimited", 0, 3},
		{"negative is unlimited", -1, 3},
		{"smaller", 2, 2},
		{"larger", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.Limit(tt.limit).Len())
		})
	}
}

func TestTable_Record(t *testing.T) {
	tbl := New([]string{"name", "price"}, nil)
	assert.Equal(t, []string{"poco x5 pro", "299"}, tbl.Record(Row{"price": "299", "name": "poco x5 pro"}))
	assert.True(t, tbl.HasColumn("price"))
	assert.False(t, tbl.HasColumn("rating"))
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"integer", 1199, "1199"},
		{"decimal", 4.4, "4.4"},
		{"fourteen digits", 12345678901234, "12345678901234"},
		{"many decimals", 1234567.891011, "1234567.891011"},
		{"negative", -0.5, "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := Scalar("rating", tt.value)
			assert.Equal(t, []string{"rating"}, tbl.Columns)
			require.Equal(t, 1, tbl.Len())
			assert.Equal(t, tt.want, tbl.Rows[0]["rating"])
		})
	}
}
