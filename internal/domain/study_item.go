package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Study item validation errors
var (
	// ErrEmptyItemID is returned when a study item ID is the nil UUID.
	ErrEmptyItemID = errors.New("study item ID cannot be empty")

	// ErrEmptyTitle is returned when a study item title is empty.
	ErrEmptyTitle = errors.New("study item title cannot be empty")

	// ErrNegativeRepetitions is returned when a repetition count is below zero.
	ErrNegativeRepetitions = errors.New("study item repetitions cannot be negative")
)

// StudyItem is a trackable unit of study material. Its ID is assigned at
// creation and never changes; Repetitions only ever grows.
type StudyItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Repetitions int       `json:"repetitions"`
}

// NewStudyItem creates a StudyItem with a fresh UUID and zero repetitions.
// Returns ErrEmptyTitle if title is empty.
func NewStudyItem(title string) (*StudyItem, error) {
	item := &StudyItem{
		ID:    uuid.New(),
		Title: title,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the StudyItem has valid data.
func (i *StudyItem) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyItemID
	}

	if i.Title == "" {
		return ErrEmptyTitle
	}

	if i.Repetitions < 0 {
		return ErrNegativeRepetitions
	}

	return nil
}

// Repeat records one completed review pass.
func (i *StudyItem) Repeat() {
	i.Repetitions++
}
