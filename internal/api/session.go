package api

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/study-tracker/internal/domain"
	"github.com/phrazzld/study-tracker/internal/study"
)

// Session owns the study collection on behalf of the HTTP layer. HTTP
// handlers run on many goroutines, so every call into the collection goes
// through mu. Exports copy the list under mu and let the collection write
// it after mu is released; exportMu keeps a slower, older export from
// replacing a newer one.
type Session struct {
	mu         sync.Mutex
	exportMu   sync.Mutex
	collection *study.Collection
	logger     *slog.Logger
}

// NewSession creates a Session around collection.
func NewSession(collection *study.Collection, logger *slog.Logger) *Session {
	if collection == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection cannot be nil for Session")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		collection: collection,
		logger:     logger.With(slog.String("component", "session")),
	}
}

// Items returns the current list and its version.
func (s *Session) Items() ([]domain.StudyItem, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Items(), s.collection.Version()
}

// AddItem appends an item with the given title.
func (s *Session) AddItem(ctx context.Context, title string) (domain.StudyItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.AddItem(ctx, title)
}

// IncrementRepetition records a repetition; ok is false for unknown IDs.
func (s *Session) IncrementRepetition(ctx context.Context, id uuid.UUID) (domain.StudyItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.IncrementRepetition(ctx, id)
}

// DeleteItems removes the given positions and returns the resulting list.
func (s *Session) DeleteItems(ctx context.Context, positions []int) ([]domain.StudyItem, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.collection.DeleteItems(ctx, positions); err != nil {
		return nil, 0, err
	}
	return s.collection.Items(), s.collection.Version(), nil
}

// Export writes the current list and returns the file location and the
// number of items written. Errors wrap study.ErrIOFailure.
func (s *Session) Export(ctx context.Context) (string, int, error) {
	s.exportMu.Lock()
	defer s.exportMu.Unlock()

	items, version := s.Items()

	path, err := s.collection.ExportItems(ctx, items)
	if err != nil {
		return "", 0, err
	}

	s.logger.Debug("session export finished",
		slog.Int("item_count", len(items)),
		slog.Uint64("version", version))

	return path, len(items), nil
}
