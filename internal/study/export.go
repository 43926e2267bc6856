package study

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phrazzld/study-tracker/internal/domain"
)

// DefaultExportFileName is the file name used when none is configured.
const DefaultExportFileName = "study_backup.json"

// Exporter writes a point-in-time copy of the collection somewhere and
// returns a reference to it.
type Exporter interface {
	Export(ctx context.Context, items []domain.StudyItem) (string, error)
}

// FileExporter writes snapshots as an indented JSON array to a fixed path.
// Every export replaces the previous file.
type FileExporter struct {
	dir      string
	fileName string
}

// NewFileExporter creates a FileExporter writing to dir/fileName. An empty dir
// means os.TempDir() and an empty fileName means DefaultExportFileName.
func NewFileExporter(dir, fileName string) *FileExporter {
	if dir == "" {
		dir = os.TempDir()
	}
	if fileName == "" {
		fileName = DefaultExportFileName
	}
	return &FileExporter{dir: dir, fileName: fileName}
}

// Path returns the location every export is written to.
func (e *FileExporter) Path() string {
	return filepath.Join(e.dir, e.fileName)
}

// Export encodes items and writes them to Path. The file is first written
// under a temporary name in the same directory and then renamed, so readers
// never see a partial snapshot.
func (e *FileExporter) Export(ctx context.Context, items []domain.StudyItem) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	data, err := EncodeSnapshot(items)
	if err != nil {
		return "", fmt.Errorf("%w: encode snapshot: %w", ErrIOFailure, err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create export directory: %w", ErrIOFailure, err)
	}

	tmp, err := os.CreateTemp(e.dir, e.fileName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: create temporary file: %w", ErrIOFailure, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: write snapshot: %w", ErrIOFailure, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: close snapshot: %w", ErrIOFailure, err)
	}

	path := e.Path()
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: replace %s: %w", ErrIOFailure, e.fileName, err)
	}

	return path, nil
}

// EncodeSnapshot renders items as a two-space indented JSON array followed by
// a newline. The output depends only on the items, so two encodings of the
// same sequence are byte-identical. A nil or empty slice encodes as [].
func EncodeSnapshot(items []domain.StudyItem) ([]byte, error) {
	if items == nil {
		items = []domain.StudyItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DecodeSnapshot parses a file produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) ([]domain.StudyItem, error) {
	var items []domain.StudyItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidFormat, err)
	}
	return items, nil
}
