package store

import (
	"sync"

	"github.com/google/uuid"

	"studydeck-backend/internal/models"
)

// ContentStore holds the session's study items in memory. Nothing survives a
// process restart. At most one item is "current" at a time; adding an item
// makes it current and deleting the current item clears the selection.
//
// The RWMutex exists because chi serves handlers on concurrent goroutines;
// every accessor works on copies so callers never share item memory.
type ContentStore struct {
	mu      sync.RWMutex
	items   []*models.StudyItem
	current uuid.UUID
}

func New() *ContentStore {
	return &ContentStore{}
}

// Add appends the item and makes it current.
func (s *ContentStore) Add(item models.StudyItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := cloneItem(&item)
	s.items = append(s.items, &copied)
	s.current = item.ID
}

func (s *ContentStore) List() []models.StudyItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.StudyItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, cloneItem(item))
	}
	return out
}

func (s *ContentStore) Get(id uuid.UUID) (models.StudyItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item := s.find(id); item != nil {
		return cloneItem(item), true
	}
	return models.StudyItem{}, false
}

// Current returns the selected item, if any.
func (s *ContentStore) Current() (models.StudyItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == uuid.Nil {
		return models.StudyItem{}, false
	}
	if item := s.find(s.current); item != nil {
		return cloneItem(item), true
	}
	return models.StudyItem{}, false
}

func (s *ContentStore) CurrentID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *ContentStore) SetCurrent(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(id) == nil {
		return false
	}
	s.current = id
	return true
}

// Delete removes the item. If it was current, the selection clears to none.
func (s *ContentStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.current == id {
				s.current = uuid.Nil
			}
			return true
		}
	}
	return false
}

// Each generation setter replaces exactly one field, leaving the others
// untouched.

func (s *ContentStore) SetSummary(id uuid.UUID, summary string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(id)
	if item == nil {
		return false
	}
	item.Summary = &summary
	return true
}

func (s *ContentStore) SetFlashcards(id uuid.UUID, cards []models.Flashcard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(id)
	if item == nil {
		return false
	}
	item.Flashcards = copyFlashcards(cards)
	return true
}

func (s *ContentStore) SetQuiz(id uuid.UUID, questions []models.QuizQuestion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(id)
	if item == nil {
		return false
	}
	item.Quiz = copyQuiz(questions)
	return true
}

func (s *ContentStore) find(id uuid.UUID) *models.StudyItem {
	for _, item := range s.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// cloneItem copies the struct and everything it points at, so no slice
// backing array or summary pointer is shared between the store and callers.
func cloneItem(item *models.StudyItem) models.StudyItem {
	out := *item
	if item.Summary != nil {
		summary := *item.Summary
		out.Summary = &summary
	}
	out.Flashcards = copyFlashcards(item.Flashcards)
	out.Quiz = copyQuiz(item.Quiz)
	return out
}

func copyFlashcards(cards []models.Flashcard) []models.Flashcard {
	if cards == nil {
		return nil
	}
	out := make([]models.Flashcard, len(cards))
	copy(out, cards)
	return out
}

func copyQuiz(questions []models.QuizQuestion) []models.QuizQuestion {
	if questions == nil {
		return nil
	}
	out := make([]models.QuizQuestion, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
