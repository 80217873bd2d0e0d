package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 5

var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrBadCredentials     = errors.New("bad credentials")
	ErrNotFound           = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Username string
	Password string
	Name     string
}

// Register valida y crea la cuenta. La unicidad del username se chequea
// antes de hashear; el digest se guarda con bcrypt, nunca el password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return User{}, ErrMissingCredentials
	}
	if len(in.Password) < minPasswordLen {
		return User{}, ErrPasswordTooShort
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, ErrUsernameTaken
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = username
	}

	u := User{
		ID:             uuid.NewString(),
		Username:       username,
		PasswordDigest: string(digest),
		Name:           name,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate resuelve username+password a una cuenta.
// Usuario inexistente y password incorrecto devuelven el mismo error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrMissingCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordDigest), []byte(password)) != nil {
		return User{}, ErrBadCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// nil = no tocar. Solo name es mutable vía update.
	Name *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, ErrNotFound
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		u.Name = strings.TrimSpace(*in.Name)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// SetAvatar persiste la key del avatar ya subido al bucket.
func (s *Service) SetAvatar(ctx context.Context, id, avatarPath string) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, ErrNotFound
	}

	u.AvatarPath = avatarPath
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}
