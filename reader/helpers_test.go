package reader

import (
	"os"
	"path/filepath"
	"testing"
)

const productsCSV = "name,brand,price,rating\n" +
	"iphone 15 pro,apple,999,4.9\n" +
	"galaxy s23 ultra,samsung,1199,4.8\n" +
	"redmi note 12,xiaomi,199,4.6\n" +
	"poco x5 pro,xiaomi,299,4.4\n"

// writeFile creates a file with the given content in a temporary directory
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
