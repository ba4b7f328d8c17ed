package auth

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fashionfuel/internal/domain"
	"fashionfuel/internal/storage"
)

var ErrBadCreds = errors.New("invalid email or password")

type account struct {
	Email string
	Hash  string
	Role  string
}

// Service checks logins against configured storefront accounts and keeps
// the per-session AuthSession snapshot, the sole source of "is logged in"
// truth across reloads.
type Service struct {
	store    storage.Store
	accounts []account
}

// Credential is one configured login; the raw password is hashed at
// startup and never kept.
type Credential struct {
	Email    string
	Password string
	Role     string // admin | user
}

func NewService(store storage.Store, creds []Credential) *Service {
	s := &Service{store: store}
	for _, c := range creds {
		if c.Email == "" || c.Password == "" {
			continue
		}
		h, err := bcrypt.GenerateFromPassword([]byte(c.Password), 12)
		if err != nil {
			continue
		}
		s.accounts = append(s.accounts, account{Email: c.Email, Hash: string(h), Role: c.Role})
	}
	return s
}

func (s *Service) Login(sid, email, password string) (*domain.AuthSession, error) {
	for _, a := range s.accounts {
		if !strings.EqualFold(a.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(password)) != nil {
			return nil, ErrBadCreds
		}
		sess := &domain.AuthSession{
			IsAuthenticated: true,
			User:            &domain.AuthUser{Email: a.Email, Role: a.Role},
			Role:            a.Role,
		}
		b, err := json.Marshal(sess)
		if err != nil {
			return nil, err
		}
		if err := s.store.Save(storage.Key("auth", sid), b); err != nil {
			return nil, err
		}
		return sess, nil
	}
	return nil, ErrBadCreds
}

func (s *Service) Logout(sid string) error {
	return s.store.Delete(storage.Key("auth", sid))
}

// Current returns the session snapshot, or an unauthenticated session when
// none exists or the snapshot is unreadable.
func (s *Service) Current(sid string) *domain.AuthSession {
	empty := &domain.AuthSession{}
	if sid == "" {
		return empty
	}
	raw, err := s.store.Load(storage.Key("auth", sid))
	if err != nil {
		return empty
	}
	var sess domain.AuthSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return empty
	}
	return &sess
}
