package domain

// SessionKey is the storage key the active session record is kept under.
const SessionKey = "user"

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

// Credential is one row of the mock credential table.
type Credential struct {
	User         User
	PasswordHash []byte
}

type CredentialRepository interface {
	GetCredentialByEmail(email string) (*Credential, error)
}

// SessionStorage is a local key-value store. Get reports false for a missing key.
type SessionStorage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
