package study

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/study-tracker/internal/domain"
	"github.com/phrazzld/study-tracker/internal/events"
)

// Collection is the ordered list of study items. Insertion order is the
// display order, every ID is unique and repetition counts never decrease.
type Collection struct {
	items    []domain.StudyItem
	version  uint64
	exporter Exporter
	emitter  events.EventEmitter
	logger   *slog.Logger
}

// NewCollection creates a collection pre-populated with one item per seed
// title, in order. A nil emitter gets an in-memory one; a nil logger uses
// slog.Default. Returns an error wrapping domain.ErrValidation if a seed
// title is empty.
func NewCollection(
	seedTitles []string,
	exporter Exporter,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (*Collection, error) {
	if exporter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("exporter cannot be nil for Collection")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if emitter == nil {
		emitter = events.NewInMemoryEventEmitter(logger)
	}

	items := make([]domain.StudyItem, 0, len(seedTitles))
	for i, title := range seedTitles {
		item, err := domain.NewStudyItem(title)
		if err != nil {
			return nil, fmt.Errorf("%w: seed title %d: %w", domain.ErrValidation, i, err)
		}
		items = append(items, *item)
	}

	return &Collection{
		items:    items,
		exporter: exporter,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "study_collection")),
	}, nil
}

// Items returns a copy of the current sequence. The result is never nil.
func (c *Collection) Items() []domain.StudyItem {
	out := make([]domain.StudyItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the collection.
func (c *Collection) Len() int {
	return len(c.items)
}

// Version returns a counter that grows by one with every mutation.
func (c *Collection) Version() uint64 {
	return c.version
}

// Subscribe registers a handler that is called after every mutation.
func (c *Collection) Subscribe(handler events.EventHandler) {
	c.emitter.RegisterHandler(handler)
}

// AddItem appends a new item with a fresh ID and zero repetitions.
// An empty title is rejected with domain.ErrEmptyTitle and nothing changes.
func (c *Collection) AddItem(ctx context.Context, title string) (domain.StudyItem, error) {
	item, err := domain.NewStudyItem(title)
	if err != nil {
		return domain.StudyItem{}, err
	}

	c.items = append(c.items, *item)
	c.changed(ctx, events.ChangeItemAdded, item.ID)

	c.logger.Debug("study item added",
		slog.String("item_id", item.ID.String()),
		slog.Int("position", len(c.items)-1))

	return *item, nil
}

// IncrementRepetition adds one repetition to the first item with the given
// ID and returns the updated item. An unknown ID is a stale reference from
// an old snapshot: it is ignored and ok is false.
func (c *Collection) IncrementRepetition(ctx context.Context, id uuid.UUID) (item domain.StudyItem, ok bool) {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}

		c.items[i].Repeat()
		c.changed(ctx, events.ChangeRepetitionIncremented, id)

		c.logger.Debug("repetition recorded",
			slog.String("item_id", id.String()),
			slog.Int("repetitions", c.items[i].Repetitions))

		return c.items[i], true
	}

	c.logger.Debug("ignoring repetition for unknown item", slog.String("item_id", id.String()))
	return domain.StudyItem{}, false
}

// DeleteItems removes the items at the given positions and keeps the
// survivors in their relative order. Positions are resolved against the
// sequence at call time and duplicates collapse. If any position is out of
// range, ErrPositionOutOfRange is returned and nothing is removed.
func (c *Collection) DeleteItems(ctx context.Context, positions []int) error {
	if len(positions) == 0 {
		return nil
	}

	doomed := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(c.items) {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrPositionOutOfRange, p, len(c.items))
		}
		doomed[p] = struct{}{}
	}

	removed := make([]uuid.UUID, 0, len(doomed))
	survivors := make([]domain.StudyItem, 0, len(c.items)-len(doomed))
	for i, item := range c.items {
		if _, ok := doomed[i]; ok {
			removed = append(removed, item.ID)
			continue
		}
		survivors = append(survivors, item)
	}

	c.items = survivors
	c.changed(ctx, events.ChangeItemsDeleted, removed...)

	c.logger.Debug("study items deleted",
		slog.Any("positions", sortedPositions(doomed)),
		slog.Int("remaining", len(c.items)))

	return nil
}

// ExportSnapshot writes the current sequence through the collection's
// exporter and returns the location of the written file. Failures wrap
// ErrIOFailure. The collection is not modified.
func (c *Collection) ExportSnapshot(ctx context.Context) (string, error) {
	return c.ExportItems(ctx, c.Items())
}

// ExportItems writes items, a copy previously taken with Items, through the
// collection's exporter. It reads no collection state and may be called
// without holding the owner's lock.
func (c *Collection) ExportItems(ctx context.Context, items []domain.StudyItem) (string, error) {
	path, err := c.exporter.Export(ctx, items)
	if err != nil {
		c.logger.Error("export failed", slog.Any("error", err), slog.Int("item_count", len(items)))
		return "", err
	}

	c.logger.Info("collection exported",
		slog.String("path", path),
		slog.Int("item_count", len(items)))

	return path, nil
}

// changed bumps the version and notifies subscribers. Subscriber failures
// are logged; the mutation has already happened and stands.
func (c *Collection) changed(ctx context.Context, changeType events.ChangeType, itemIDs ...uuid.UUID) {
	c.version++
	event := events.NewChangeEvent(changeType, c.version, itemIDs...)
	if err := c.emitter.EmitEvent(ctx, event); err != nil {
		c.logger.Warn("change subscriber failed",
			slog.Any("error", err),
			slog.String("event_type", string(changeType)),
			slog.Uint64("version", c.version))
	}
}

func sortedPositions(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
