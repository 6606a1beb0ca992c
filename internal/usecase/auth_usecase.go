package usecase

import (
	"encoding/json"
	"errors"
	"sync"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthSession is the mock login of one storefront session. The identity is
// mirrored to storage so it survives a restart.
type AuthSession struct {
	mu      sync.RWMutex
	user    *domain.User
	creds   domain.CredentialRepository
	storage domain.SessionStorage
	log     *logrus.Logger
}

// NewAuthSession restores a persisted identity if there is a readable one.
// Missing or malformed data starts the session logged out.
func NewAuthSession(creds domain.CredentialRepository, storage domain.SessionStorage, logger *logrus.Logger) *AuthSession {
	s := &AuthSession{
		creds:   creds,
		storage: storage,
		log:     logger,
	}
	s.user = s.restore()
	return s
}

func (s *AuthSession) restore() *domain.User {
	data, ok, err := s.storage.Get(domain.SessionKey)
	if err != nil {
		s.log.Warnf("Use Case: Could not read persisted session, starting logged out: %v", err)
		return nil
	}
	if !ok {
		s.log.Info("Use Case: No persisted session found")
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warnf("Use Case: Persisted session is malformed, starting logged out: %v", err)
		return nil
	}
	if user.ID == "" || user.Email == "" {
		s.log.Warn("Use Case: Persisted session has no identity, starting logged out")
		return nil
	}

	s.log.Infof("Use Case: Restored session for %s (admin: %t)", user.Email, user.IsAdmin)
	return &user
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *AuthSession) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthSession) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin
}

// Login matches the pair against the credential table. A mismatch returns
// false and leaves any current session in place.
func (s *AuthSession) Login(email, password string) bool {
	s.log.Infof("Use Case: Attempting authentication for email: %s", email)

	cred, err := s.creds.GetCredentialByEmail(email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Errorf("Use Case: Error retrieving credential for %s: %v", email, err)
		}
		s.log.Warnf("Use Case: Auth failed - unknown email: %s", email)
		return false
	}
	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)); err != nil {
		s.log.Warnf("Use Case: Auth failed - incorrect password for %s", email)
		return false
	}

	user := cred.User
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.persist(user)
	s.log.Infof("Use Case: Authentication successful for %s (ID: %s, admin: %t)", user.Email, user.ID, user.IsAdmin)
	return true
}

func (s *AuthSession) Logout() {
	s.mu.Lock()
	previous := s.user
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Delete(domain.SessionKey); err != nil {
		s.log.Warnf("Use Case: Could not remove persisted session: %v", err)
	}
	if previous != nil {
		s.log.Infof("Use Case: Logged out %s", previous.Email)
	}
}

// persist is best effort; the in-memory login stands even if the write fails.
func (s *AuthSession) persist(user domain.User) {
	data, err := json.Marshal(user)
	if err != nil {
		s.log.Errorf("Use Case: Could not encode session for %s: %v", user.Email, err)
		return
	}
	if err := s.storage.Set(domain.SessionKey, data); err != nil {
		s.log.Errorf("Use Case: Could not persist session for %s: %v", user.Email, err)
	}
}
