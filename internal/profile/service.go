package profile

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service contains business logic for the profile.
type Service struct {
	Repo ProfileRepo
}

// NewService constructs a Service.
func NewService(repo ProfileRepo) *Service {
	return &Service{Repo: repo}
}

// Get returns the saved profile.
func (s *Service) Get(ctx context.Context) (Profile, error) {
	return s.Repo.Get(ctx)
}

// Put validates and replaces the saved profile wholesale.
func (s *Service) Put(ctx context.Context, p Profile) (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Profile{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Put(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
