package characters

import (
	"context"
	"sync"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/clock"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
)

var _ Repository = (*InMemoryRepository)(nil)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and single-process use
type InMemoryRepository struct {
	mu         sync.RWMutex
	clock      clock.Clock
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithClock(clock.New())
}

// NewInMemoryRepositoryWithClock creates an in-memory repository that stamps
// records with c
func NewInMemoryRepositoryWithClock(c clock.Clock) *InMemoryRepository {
	return &InMemoryRepository{
		clock:      c,
		characters: make(map[string]*character.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(_ context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return rpgerr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.CreatedAt = r.clock.Now()
	char.UpdatedAt = char.CreatedAt

	// Store a copy to avoid external modifications
	r.characters[char.ID] = char.Clone()
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return char.Clone(), nil
}

// Update replaces an existing character
func (r *InMemoryRepository) Update(_ context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.characters[char.ID]
	if !exists {
		return rpgerr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.CreatedAt = existing.CreatedAt
	char.UpdatedAt = r.clock.Now()
	r.characters[char.ID] = char.Clone()
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}

// List returns copies of every character ordered by creation time
func (r *InMemoryRepository) List(_ context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*character.Character, 0, len(r.characters))
	for _, char := range r.characters {
		result = append(result, char.Clone())
	}

	return sortByCreation(result), nil
}
