package sheets

import (
	"context"
	"sync"

	"github.com/KirkDiggler/sheet-engine/internal/domain/sheet"
	sheeterr "github.com/KirkDiggler/sheet-engine/internal/errors"
	"github.com/KirkDiggler/sheet-engine/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the sheet repository.
// Useful for testing and development
type InMemoryRepository struct {
	mu            sync.RWMutex
	sheets        map[string]*sheet.Sheet
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		sheets:        make(map[string]*sheet.Sheet),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  RealTimeProvider{},
	}
}

// Create stores a new sheet, assigning an ID when absent
func (r *InMemoryRepository) Create(ctx context.Context, s *sheet.Sheet) error {
	if s == nil {
		return sheeterr.InvalidArgument("sheet cannot be nil")
	}

	if s.ID == "" {
		s.ID = r.uuidGenerator.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[s.ID]; exists {
		return sheeterr.AlreadyExistsf("sheet with ID '%s' already exists", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	now := r.timeProvider.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	// Store a copy to avoid external modifications
	sheetCopy := *s
	r.sheets[s.ID] = &sheetCopy

	return nil
}

// Get retrieves a sheet by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*sheet.Sheet, error) {
	if id == "" {
		return nil, sheeterr.InvalidArgument("sheet ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.sheets[id]
	if !exists {
		return nil, sheeterr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}

	sheetCopy := *s
	return &sheetCopy, nil
}

// GetByOwner retrieves all sheets for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*sheet.Sheet, error) {
	if ownerID == "" {
		return nil, sheeterr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*sheet.Sheet
	for _, s := range r.sheets {
		if s.OwnerID == ownerID {
			sheetCopy := *s
			result = append(result, &sheetCopy)
		}
	}

	return result, nil
}

// Update updates an existing sheet
func (r *InMemoryRepository) Update(ctx context.Context, s *sheet.Sheet) error {
	if s == nil {
		return sheeterr.InvalidArgument("sheet cannot be nil")
	}

	if s.ID == "" {
		return sheeterr.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.sheets[s.ID]
	if !exists {
		return sheeterr.NotFoundf("sheet with ID '%s' not found", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = r.timeProvider.Now()

	sheetCopy := *s
	r.sheets[s.ID] = &sheetCopy

	return nil
}

// Delete removes a sheet
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return sheeterr.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[id]; !exists {
		return sheeterr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}

	delete(r.sheets, id)
	return nil
}
