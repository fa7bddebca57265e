// Package importer reads uploaded rental and toll spreadsheets into the
// in-memory records the cross-reference engine consumes. Uploads arrive as
// XLSX or CSV with inconsistent column naming; rows are keyed loosely and
// resolved through candidate-key lists at match time.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// importDir is the subdirectory for uploaded spreadsheets.
const importDir = "import"

// processedDir is the subdirectory for already-ingested uploads.
const processedDir = "import/processed"

// FileInfo describes an upload in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns XLSX and CSV files in <root>/import/.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
