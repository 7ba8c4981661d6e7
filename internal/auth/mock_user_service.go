package auth

import (
	"fmt"

	"github.com/wise/expenses-tracker/internal/user"
)

type MockUserService struct {
	users      map[string]*user.User
	shouldFail bool
}

func NewMockUserService() *MockUserService {
	return &MockUserService{users: make(map[string]*user.User)}
}

func (m *MockUserService) CreateUser(username, passwordHash, role string) (*user.User, error) {
	if m.shouldFail {
		return nil, user.ErrInternalError
	}
	if _, exists := m.users[username]; exists {
		return nil, user.ErrUsernameAlreadyExists
	}
	newUser := &user.User{
		ID:           fmt.Sprintf("user-%d", len(m.users)+1),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	m.users[username] = newUser
	return newUser, nil
}

func (m *MockUserService) GetUserByUsername(username string) (*user.User, error) {
	if m.shouldFail {
		return nil, user.ErrInternalError
	}
	existing, ok := m.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return existing, nil
}

func (m *MockUserService) GetUserByID(id string) (*user.User, error) {
	if m.shouldFail {
		return nil, user.ErrInternalError
	}
	for _, existing := range m.users {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, user.ErrUserNotFound
}
