package contacts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for contacts.
type Service struct {
	Repo ContactsRepo
}

// NewService constructs a Service.
func NewService(repo ContactsRepo) *Service {
	return &Service{Repo: repo}
}

// Create validates and stores a new contact.
func (s *Service) Create(ctx context.Context, contact Contact) (Contact, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" {
		return Contact{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	contact.ID = uuid.NewString()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if err := s.Repo.Create(ctx, contact); err != nil {
		return Contact{}, err
	}
	return contact, nil
}

// Get returns a contact by ID.
func (s *Service) Get(ctx context.Context, id string) (Contact, error) {
	if strings.TrimSpace(id) == "" {
		return Contact{}, fmt.Errorf("%w: contact id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all contacts.
func (s *Service) List(ctx context.Context) ([]Contact, error) {
	return s.Repo.List(ctx)
}

// Update validates and replaces an existing contact.
func (s *Service) Update(ctx context.Context, id string, contact Contact) (Contact, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Contact{}, err
	}

	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" {
		return Contact{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	contact.ID = existing.ID
	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, contact); err != nil {
		return Contact{}, err
	}
	return contact, nil
}

// Delete removes a contact by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: contact id required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}
