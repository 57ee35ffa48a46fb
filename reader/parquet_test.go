package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productRecord struct {
	Name     string   `parquet:"name"`
	Price    int64    `parquet:"price"`
	Rating   float64  `parquet:"rating"`
	Stock    int32    `parquet:"stock"`
	Active   bool     `parquet:"active"`
	Discount *float64 `parquet:"discount,optional"`
}

// createTestParquetFile creates a temporary parquet file with test data
func createTestParquetFile(t *testing.T, rows []productRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.parquet")

	f, err := os.Create(path)
	require.NoError(t, err)

	writer := parquet.NewGenericWriter[productRecord](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())

	return path
}

func TestReadParquet(t *testing.T) {
	discount := 0.15
	path := createTestParquetFile(t, []productRecord{
		{Name: "iphone 15 pro", Price: 999, Rating: 4.9, Stock: 12, Active: true, Discount: &discount},
		{Name: "poco x5 pro", Price: 299, Rating: 4.4, Stock: 0, Active: false},
	})

	tbl, err := ReadParquet(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"name", "price", "rating", "stock", "active", "discount"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())

	first := tbl.Rows[0]
	assert.Equal(t, "iphone 15 pro", first["name"])
	assert.Equal(t, "999", first["price"])
	assert.Equal(t, "4.9", first["rating"])
	assert.Equal(t, "12", first["stock"])
	assert.Equal(t, "true", first["active"])
	assert.Equal(t, "0.15", first["discount"])

	second := tbl.Rows[1]
	assert.Equal(t, "poco x5 pro", second["name"])
	assert.Equal(t, "false", second["active"])
	assert.Equal(t, "", second["discount"], "null renders as empty string")
	assert.Len(t, second, len(tbl.Columns))
}

func TestReadParquet_ManyRows(t *testing.T) {
	rows := make([]productRecord, rowBatchSize*2+5)
	for i := range rows {
		rows[i] = productRecord{Name: "item", Price: int64(i)}
	}
	path := createTestParquetFile(t, rows)

	tbl, err := ReadParquet(path)
	require.NoError(t, err)
	require.Equal(t, len(rows), tbl.Len())
	assert.Equal(t, "260", tbl.Rows[260]["price"])
}

func TestReadParquet_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadParquet(filepath.Join(t.TempDir(), "missing.parquet"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not a parquet file", func(t *testing.T) {
		path := writeFile(t, "bad.parquet", productsCSV)
		_, err := ReadParquet(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open parquet file")
	})
}

func TestParquetReader_CloseTwice(t *testing.T) {
	path := createTestParquetFile(t, []productRecord{{Name: "x"}})
	r, err := NewParquetReader(path)
	require.NoError(t, err)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}
