package user

import (
	"errors"
	"time"
)

const RoleUser = "USER"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInternalError         = errors.New("internal Server Error")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Service is the credential store contract the auth layer depends on.
type Service interface {
	CreateUser(username, passwordHash, role string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	GetUserByID(id string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateUser(username, passwordHash, role string) (*User, error) {
	user := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.repo.createUser(user); err != nil {
		if errors.Is(err, ErrUsernameAlreadyExists) {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, ErrInternalError
	}

	return user, nil
}

func (s *service) GetUserByUsername(username string) (*User, error) {
	return s.repo.getUserByUsername(username)
}

func (s *service) GetUserByID(id string) (*User, error) {
	return s.repo.getUserByID(id)
}
