package user

import "fmt"

type MockRepository struct {
	users      map[string]*User
	shouldFail bool
}

func NewMockRepository() *MockRepository {
	return &MockRepository{users: make(map[string]*User)}
}

func (m *MockRepository) createUser(user *User) error {
	if m.shouldFail {
		return fmt.Errorf("database error")
	}
	if _, exists := m.users[user.Username]; exists {
		return ErrUsernameAlreadyExists
	}
	user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	m.users[user.Username] = user
	return nil
}

func (m *MockRepository) getUserByUsername(username string) (*User, error) {
	if m.shouldFail {
		return nil, fmt.Errorf("database error")
	}
	existing, ok := m.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return existing, nil
}

func (m *MockRepository) getUserByID(id string) (*User, error) {
	if m.shouldFail {
		return nil, fmt.Errorf("database error")
	}
	for _, existing := range m.users {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, ErrUserNotFound
}
