package study

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/study-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSnapshot(t *testing.T, path string) []domain.StudyItem {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	items, err := DecodeSnapshot(data)
	require.NoError(t, err)
	return items
}

func TestNewFileExporter_Defaults(t *testing.T) {
	e := NewFileExporter("", "")
	assert.Equal(t, filepath.Join(os.TempDir(), "study_backup.json"), e.Path())

	e = NewFileExporter("/var/backups", "mine.json")
	assert.Equal(t, filepath.Join("/var/backups", "mine.json"), e.Path())
}

func TestCollection_ExportSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, exporter := newTestCollection(t, "שולחן ערוך - סימן א'", "מסילת ישרים", "תניא")
	second := c.Items()[1]
	c.IncrementRepetition(ctx, second.ID)
	c.IncrementRepetition(ctx, second.ID)
	before := c.Version()

	path, err := c.ExportSnapshot(ctx)

	require.NoError(t, err)
	assert.Equal(t, exporter.Path(), path)
	assert.Equal(t, c.Items(), readSnapshot(t, path))
	assert.Equal(t, before, c.Version(), "export does not mutate")
}

func TestCollection_ExportSnapshot_Empty(t *testing.T) {
	c, _ := newTestCollection(t)

	path, err := c.ExportSnapshot(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
	assert.Empty(t, readSnapshot(t, path))
}

func TestCollection_ExportSnapshot_Idempotent(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCollection(t, "a", "b", "c")

	path, err := c.ExportSnapshot(ctx)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	path, err = c.ExportSnapshot(ctx)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCollection_ExportSnapshot_Overwrites(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCollection(t, "a", "b")

	_, err := c.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.NoError(t, c.DeleteItems(ctx, []int{0}))
	path, err := c.ExportSnapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, titlesOf(readSnapshot(t, path)))

	// Only the target file is left behind, no temporary files
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCollection_ExportSnapshot_IOFailure(t *testing.T) {
	ctx := context.Background()

	// A regular file where the export directory should be
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	c, err := NewCollection([]string{"a"}, NewFileExporter(blocker, ""), nil, discardLogger())
	require.NoError(t, err)

	path, err := c.ExportSnapshot(ctx)

	assert.ErrorIs(t, err, ErrIOFailure)
	assert.Empty(t, path)

	// The collection stays usable
	_, err = c.AddItem(ctx, "b")
	assert.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestCollection_ExportItems_WritesGivenCopy(t *testing.T) {
	ctx := context.Background()
	c, exporter := newTestCollection(t, "a", "b")
	snapshot := c.Items()

	_, err := c.AddItem(ctx, "c")
	require.NoError(t, err)

	path, err := c.ExportItems(ctx, snapshot)
	require.NoError(t, err)

	assert.Equal(t, exporter.Path(), path)
	assert.Equal(t, snapshot, readSnapshot(t, path))
	assert.Equal(t, 3, c.Len())
}

func TestFileExporter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewFileExporter(t.TempDir(), "")
	_, err := e.Export(ctx, nil)

	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(e.Path())
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestEncodeSnapshot(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	data, err := EncodeSnapshot([]domain.StudyItem{{ID: id, Title: "תניא", Repetitions: 4}})
	require.NoError(t, err)

	want := "[\n" +
		"  {\n" +
		"    \"id\": \"11111111-1111-1111-1111-111111111111\",\n" +
		"    \"title\": \"תניא\",\n" +
		"    \"repetitions\": 4\n" +
		"  }\n" +
		"]\n"
	assert.Equal(t, want, string(data))

	data, err = EncodeSnapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestDecodeSnapshot_InvalidFormat(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"not": "an array"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}
