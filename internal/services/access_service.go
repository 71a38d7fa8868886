package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccessNotConfigured = errors.New("access key not configured")
	ErrInvalidAccessToken  = errors.New("invalid access token")
	ErrEmptyAccessKey      = errors.New("access key is required")
)

const (
	accessTokenScope = "liftlog_access"
	AccessTokenTTL   = 30 * 24 * time.Hour
)

type accessClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// AccessService checks the shared access key and issues the signed token
// that stands in for it on later requests.
type AccessService struct {
	keyHash []byte
	secret  []byte
	clock   Clock
}

func NewAccessService(keyHash []byte, secret []byte, clock Clock) *AccessService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AccessService{
		keyHash: keyHash,
		secret:  secret,
		clock:   clock,
	}
}

// HashAccessKey returns the bcrypt hash stored in ACCESS_KEY_HASH.
func HashAccessKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyAccessKey
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash access key: %w", err)
	}
	return string(hash), nil
}

func (service *AccessService) Configured() bool {
	return len(service.keyHash) > 0
}

func (service *AccessService) Validate(key string) bool {
	if !service.Configured() {
		return false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(service.keyHash, []byte(key)) == nil
}

func (service *AccessService) IssueToken() (string, time.Time, error) {
	if len(service.secret) == 0 {
		return "", time.Time{}, ErrAccessNotConfigured
	}
	now := service.clock.Now()
	expiresAt := now.Add(AccessTokenTTL)
	claims := accessClaims{
		Scope: accessTokenScope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return token, expiresAt, nil
}

func (service *AccessService) VerifyToken(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(service.secret) == 0 {
		return ErrInvalidAccessToken
	}

	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return service.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(service.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidAccessToken
	}
	if claims.Scope != accessTokenScope {
		return ErrInvalidAccessToken
	}
	return nil
}
