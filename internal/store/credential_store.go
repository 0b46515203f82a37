package store

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
	"github.com/tiozaobarbearia/agenda-api/internal/models"
)

const usersFileName = "users.json"

// plaintextSentinel is what the mobile app wrote when its bcrypt was missing.
// Such records are dead on arrival here: login rejects them with a warning.
const plaintextSentinel = "PLAINTEXT::"

type usersFile struct {
	Users []models.User `json:"users"`
}

// CredentialStore is the flat-JSON username/password-hash registry. Register
// serializes on mu so two concurrent registrations of the same username
// cannot both succeed.
type CredentialStore struct {
	path string
	mu   sync.RWMutex
}

func NewCredentialStore(dataDir string) (*CredentialStore, error) {
	path := filepath.Join(dataDir, usersFileName)
	if err := ensureFile(path, usersFile{Users: []models.User{}}); err != nil {
		return nil, err
	}
	return &CredentialStore{path: path}, nil
}

func (s *CredentialStore) load() ([]models.User, error) {
	var doc usersFile
	if err := readFileJSON(s.path, &doc); err != nil {
		return nil, err
	}
	return doc.Users, nil
}

func (s *CredentialStore) save(users []models.User) error {
	return writeFileJSON(s.path, usersFile{Users: users})
}

func findUser(users []models.User, username string) *models.User {
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i]
		}
	}
	return nil
}

// --------------------------------------------------
// Register
// --------------------------------------------------

func (s *CredentialStore) Register(
	ctx context.Context,
	username string,
	password string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	if findUser(users, username) != nil {
		return httperr.ErrBusiness("duplicate_user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users = append(users, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	return s.save(users)
}

// --------------------------------------------------
// Authenticate
// --------------------------------------------------

// Authenticate reports whether the pair matches. Unknown username and wrong
// password are deliberately indistinguishable to the caller; only storage
// faults come back as an error.
func (s *CredentialStore) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.load()
	if err != nil {
		return false, err
	}

	user := findUser(users, username)
	if user == nil {
		return false, nil
	}

	if strings.HasPrefix(user.PasswordHash, plaintextSentinel) {
		log.Printf("credential store: user %q has a legacy plaintext password, refusing login; re-register the account", user.Username)
		return false, nil
	}

	return bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	) == nil, nil
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

// EnsureSeeded creates the default account once; repeated calls are no-ops.
func (s *CredentialStore) EnsureSeeded(
	ctx context.Context,
	username string,
	password string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	if findUser(users, username) != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users = append(users, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	return s.save(users)
}
