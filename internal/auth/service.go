package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/wise/expenses-tracker/internal/user"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalError      = errors.New("internal Server Error")
	ErrUsernameLength     = fmt.Errorf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	ErrPasswordLength     = fmt.Errorf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength)
)

type Service interface {
	Register(username, password string) (string, error)
	Authenticate(username, password string) (string, error)
	AuthenticationFilter() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
	bcryptCost  int
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, bcryptCost int) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
		bcryptCost:  bcryptCost,
	}
}

func (s *service) hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	return string(hashedPasswordBytes), err
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

func validateCredentialInput(username, password string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return ErrUsernameLength
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrPasswordLength
	}
	return nil
}

// Register stores a new credential and issues a token for it. The store write
// and the token issuance are two steps on purpose: if issuance ever failed
// after the insert, the account exists and Authenticate is the recovery path.
func (s *service) Register(username, password string) (string, error) {
	if err := validateCredentialInput(username, password); err != nil {
		return "", err
	}

	_, err := s.userService.GetUserByUsername(username)
	if err == nil {
		return "", user.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		log.Println("Error with database request")
		return "", ErrInternalError
	}

	passwordHash, err := s.hashPassword(password)
	if err != nil {
		log.Println("Error during hashing the password")
		return "", ErrInternalError
	}

	newUser, err := s.userService.CreateUser(username, passwordHash, user.RoleUser)
	if err != nil {
		if errors.Is(err, user.ErrUsernameAlreadyExists) {
			return "", user.ErrUsernameAlreadyExists
		}
		log.Println("Error during creating the user: ", err)
		return "", ErrInternalError
	}

	token, err := s.jwtManager.GenerateToken(newUser.Username)
	if err != nil {
		log.Println("Error during generating JWT token: ", err)
		return "", ErrInternalError
	}

	return token, nil
}

// Authenticate verifies the submitted credentials and issues a token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *service) Authenticate(username, password string) (string, error) {
	existingUser, err := s.userService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", ErrInternalError
	}

	if !doPasswordsMatch(existingUser.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(existingUser.Username)
	if err != nil {
		log.Println("Error during generating JWT token: ", err)
		return "", ErrInternalError
	}

	return token, nil
}
