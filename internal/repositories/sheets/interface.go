package sheets

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/sheet-engine/internal/domain/sheet"
)

// Repository defines the interface for sheet persistence
type Repository interface {
	// Create stores a new sheet, assigning an ID when absent
	Create(ctx context.Context, s *sheet.Sheet) error

	// Get retrieves a sheet by ID
	Get(ctx context.Context, id string) (*sheet.Sheet, error)

	// GetByOwner retrieves all sheets for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*sheet.Sheet, error)

	// Update updates an existing sheet
	Update(ctx context.Context, s *sheet.Sheet) error

	// Delete removes a sheet
	Delete(ctx context.Context, id string) error
}
