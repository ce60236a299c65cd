package admin

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	registry Registry
}

func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// Login checks credentials against the registry. Every failure mode maps
// to the same error so nothing leaks about which part was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*Principal, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	p, err := s.registry.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !p.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return p, nil
}

// HashPassword is used by seeding and account provisioning.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
