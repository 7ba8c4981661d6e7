package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidJWTToken = errors.New("JWT token is invalid")
	ErrExpiredJWTToken = errors.New("JWT token is expired")
)

// Claim names the issuer always controls. Caller-supplied extra claims with
// these keys are ignored, never merged.
var reservedClaimNames = map[string]struct{}{
	"sub": {},
	"iat": {},
	"exp": {},
}

type JWTManagerInterface interface {
	GenerateToken(username string) (string, error)
	GenerateTokenWithClaims(extraClaims map[string]interface{}, username string) (string, error)
	IsTokenValid(tokenString, username string) bool
	ValidateToken(tokenString, username string) error
	ExtractUsername(tokenString string) (string, error)
	ExtractAllClaims(tokenString string) (jwt.MapClaims, error)
}

// JWTManager issues and validates HMAC-SHA256 signed bearer tokens. It holds
// no mutable state beyond the read-only secret, so it is safe for concurrent
// use from many request workers.
type JWTManager struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

func NewJWTManager(secret string, duration time.Duration) (*JWTManager, error) {
	if len(secret) < 32 {
		return nil, errors.New("JWT secret must be at least 32 bytes for HS256")
	}
	if duration <= 0 {
		return nil, errors.New("JWT token duration must be positive")
	}

	return &JWTManager{
		secret:   []byte(secret),
		duration: duration,
		now:      time.Now,
	}, nil
}

// GenerateToken issues a token with standard claims only.
func (j *JWTManager) GenerateToken(username string) (string, error) {
	return j.GenerateTokenWithClaims(nil, username)
}

// GenerateTokenWithClaims issues a token carrying extraClaims merged with
// {sub, iat, exp}. Reserved claim names always win over extras.
func (j *JWTManager) GenerateTokenWithClaims(extraClaims map[string]interface{}, username string) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{}
	for name, value := range extraClaims {
		if _, reserved := reservedClaimNames[name]; reserved {
			continue
		}
		claims[name] = value
	}
	claims["sub"] = username
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(j.duration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ExtractAllClaims parses the token and verifies its signature, returning the
// claims map. Expiry is deliberately not checked here: an expired token still
// has a readable, authentic payload. Validation is ValidateToken's job.
func (j *JWTManager) ExtractAllClaims(tokenString string) (jwt.MapClaims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidJWTToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}

	return claims, nil
}

// ExtractUsername returns the token's subject claim.
func (j *JWTManager) ExtractUsername(tokenString string) (string, error) {
	claims, err := j.ExtractAllClaims(tokenString)
	if err != nil {
		return "", err
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", ErrInvalidJWTToken
	}

	return username, nil
}

// ValidateToken reports why a token is not acceptable for the given username.
// The expired case is separated from the invalid case for diagnostics only;
// callers treat both as unauthenticated.
func (j *JWTManager) ValidateToken(tokenString, username string) error {
	claims, err := j.ExtractAllClaims(tokenString)
	if err != nil {
		return err
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject != username {
		return ErrInvalidJWTToken
	}

	expiresAt, err := expirationTime(claims)
	if err != nil {
		return ErrInvalidJWTToken
	}

	// now >= exp counts as expired.
	if !j.now().Before(expiresAt) {
		return ErrExpiredJWTToken
	}

	return nil
}

// IsTokenValid fails closed: any parsing, signature, subject or expiry
// problem yields false, never an error.
func (j *JWTManager) IsTokenValid(tokenString, username string) bool {
	return j.ValidateToken(tokenString, username) == nil
}

// ExtractClaim projects a single named claim out of a verified token.
func ExtractClaim[T any](manager JWTManagerInterface, tokenString, name string) (T, error) {
	var zero T

	claims, err := manager.ExtractAllClaims(tokenString)
	if err != nil {
		return zero, err
	}

	raw, ok := claims[name]
	if !ok {
		return zero, ErrInvalidJWTToken
	}

	value, ok := raw.(T)
	if !ok {
		return zero, ErrInvalidJWTToken
	}

	return value, nil
}

func expirationTime(claims jwt.MapClaims) (time.Time, error) {
	// encoding/json decodes numeric claims as float64
	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0), nil
	case int64:
		return time.Unix(exp, 0), nil
	default:
		return time.Time{}, ErrInvalidJWTToken
	}
}
