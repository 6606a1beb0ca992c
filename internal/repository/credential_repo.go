package repository

import (
	"fmt"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// MockAccount is a plain-text entry of the mock credential table.
type MockAccount struct {
	User     domain.User
	Password string
}

// DefaultMockAccounts is the fixed credential table of the mock login.
func DefaultMockAccounts() []MockAccount {
	return []MockAccount{
		{
			User: domain.User{
				ID:       "1",
				Email:    "admin@store.com",
				FullName: "Store Admin",
				IsAdmin:  true,
			},
			Password: "admin123",
		},
		{
			User: domain.User{
				ID:       "2",
				Email:    "user@example.com",
				FullName: "John Doe",
				IsAdmin:  false,
			},
			Password: "user123",
		},
	}
}

type mockCredentialRepository struct {
	credentials map[string]domain.Credential
	log         *logrus.Logger
}

// NewMockCredentialRepository hashes the given accounts once at start-up.
// Email lookup is exact.
func NewMockCredentialRepository(accounts []MockAccount, logger *logrus.Logger) (domain.CredentialRepository, error) {
	credentials := make(map[string]domain.Credential, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("could not hash mock password for %s: %w", a.User.Email, err)
		}
		credentials[a.User.Email] = domain.Credential{User: a.User, PasswordHash: hash}
	}
	logger.Infof("Repository: Loaded %d mock credentials", len(credentials))
	return &mockCredentialRepository{
		credentials: credentials,
		log:         logger,
	}, nil
}

func (r *mockCredentialRepository) GetCredentialByEmail(email string) (*domain.Credential, error) {
	c, ok := r.credentials[email]
	if !ok {
		r.log.Debugf("Repository: Credential for email %s not found", email)
		return nil, fmt.Errorf("user with email %s %w", email, domain.ErrNotFound)
	}
	return &c, nil
}
