package output

import "github.com/vegasq/csvq/table"

func sampleTable() *table.Table {
	return table.New([]string{"name", "brand", "price"}, []table.Row{
		{"name": "redmi note 12", "brand": "xiaomi", "price": "199"},
		{"name": "poco x5 pro", "brand": "xiaomi", "price": "299"},
	})
}
