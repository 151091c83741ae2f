package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=mocksheet -source=service.go

import (
	"context"

	"github.com/KirkDiggler/sheet-engine/internal/document"
	domain "github.com/KirkDiggler/sheet-engine/internal/domain/sheet"
	sheeterr "github.com/KirkDiggler/sheet-engine/internal/errors"
	"github.com/KirkDiggler/sheet-engine/internal/repositories/sheets"
)

// Repository is an alias for the sheet repository interface
type Repository = sheets.Repository

// Service defines the sheet engine interface
type Service interface {
	// Validate reports whether text is an acceptable sheet document. Empty
	// or whitespace-only input is acceptable. No schema validation happens
	// here, only well-formedness.
	Validate(text string) bool

	// Recompute recomputes every derived field of a sheet and returns the
	// canonical rendering, or the input unchanged when nothing needed
	// updating. Malformed input fails with a parse error.
	Recompute(text string) (string, error)

	// ApplyModifier accepts an opaque modifier description and echoes the
	// sheet back. The modifier contract is not designed yet.
	ApplyModifier(text, modifier string) (string, error)

	// SaveSheet recomputes a sheet and stores it
	SaveSheet(ctx context.Context, input *SaveSheetInput) (*SaveSheetOutput, error)

	// GetSheet retrieves a stored sheet by ID
	GetSheet(ctx context.Context, id string) (*domain.Sheet, error)

	// ListSheets lists all stored sheets for an owner
	ListSheets(ctx context.Context, ownerID string) ([]*domain.Sheet, error)

	// DeleteSheet removes a stored sheet
	DeleteSheet(ctx context.Context, id string) error
}

// SaveSheetInput contains the data needed to store a sheet
type SaveSheetInput struct {
	ID      string // empty to create a new sheet
	OwnerID string
	Name    string // defaults to the document's character.name
	Text    string
}

// SaveSheetOutput contains the stored sheet
type SaveSheetOutput struct {
	Sheet *domain.Sheet
}

// service implements the Service interface
type service struct {
	repository Repository
	style      *document.StylePolicy
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository            // Optional; persistence operations need it
	Style      *document.StylePolicy // Optional, defaults to DefaultStylePolicy
}

// NewService creates a new sheet service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		repository: cfg.Repository,
		style:      cfg.Style,
	}
	if svc.style == nil {
		svc.style = document.DefaultStylePolicy()
	}
	return svc
}

// Validate reports whether text parses as a sheet document
func (s *service) Validate(text string) bool {
	return document.Validate(text)
}

// Recompute applies ability resolution and every propagation rule, then
// re-renders the document only when something actually changed.
func (s *service) Recompute(text string) (string, error) {
	doc, err := document.Parse(text)
	if err != nil {
		return "", sheeterr.Wrap(err, "failed to parse sheet").
			WithMeta("operation", "Recompute")
	}

	// A sheet without abilities has nothing derived to compute.
	if doc.Lookup("character.abilities") == nil {
		return text, nil
	}

	if !domain.Apply(doc) {
		return text, nil
	}

	return doc.Render(s.style), nil
}

// ApplyModifier parse-checks the sheet and echoes it back unchanged.
func (s *service) ApplyModifier(text, modifier string) (string, error) {
	if _, err := document.Parse(text); err != nil {
		return "", sheeterr.Wrap(err, "failed to parse sheet").
			WithMeta("operation", "ApplyModifier")
	}
	_ = modifier
	return text, nil
}

// SaveSheet recomputes and stores a sheet
func (s *service) SaveSheet(ctx context.Context, input *SaveSheetInput) (*SaveSheetOutput, error) {
	if input == nil {
		return nil, sheeterr.InvalidArgument("input cannot be nil")
	}
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}

	source, err := s.Recompute(input.Text)
	if err != nil {
		return nil, sheeterr.Wrap(err, "cannot save an unparseable sheet").
			WithMeta("operation", "SaveSheet")
	}

	stored := &domain.Sheet{
		ID:      input.ID,
		OwnerID: input.OwnerID,
		Name:    input.Name,
		Source:  source,
	}
	if stored.Name == "" {
		stored.Name = sheetName(source)
	}

	if stored.ID == "" {
		err = repo.Create(ctx, stored)
	} else {
		err = repo.Update(ctx, stored)
	}
	if err != nil {
		return nil, err
	}

	return &SaveSheetOutput{Sheet: stored}, nil
}

// GetSheet retrieves a stored sheet by ID
func (s *service) GetSheet(ctx context.Context, id string) (*domain.Sheet, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

// ListSheets lists all stored sheets for an owner
func (s *service) ListSheets(ctx context.Context, ownerID string) ([]*domain.Sheet, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.GetByOwner(ctx, ownerID)
}

// DeleteSheet removes a stored sheet
func (s *service) DeleteSheet(ctx context.Context, id string) error {
	repo, err := s.repo()
	if err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

func (s *service) repo() (Repository, error) {
	if s.repository == nil {
		return nil, sheeterr.Internal("sheet storage is not configured")
	}
	return s.repository, nil
}

// sheetName pulls character.name out of a sheet, or "" when absent.
func sheetName(text string) string {
	doc, err := document.Parse(text)
	if err != nil {
		return ""
	}
	name, _ := document.StringValue(doc.Lookup("character.name"))
	return name
}
