package service

import (
	"alcyxob/student-portal/internal/domain"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
)

// --- Error Definitions ---
var (
	ErrInvalidCredentials = errors.New("invalid login form")
	ErrTokenGeneration    = errors.New("failed to generate session token")
	ErrInvalidToken       = errors.New("invalid session token")
)

// LoginForm is the login page form. Any non-empty pair is accepted.
type LoginForm struct {
	Username string `json:"username" form:"username" validate:"notblank"`
	Password string `json:"password" form:"password" validate:"notblank"`
}

var loginMessages = map[string]string{
	"username." + notBlankTag: "Username or email is required",
	"password." + notBlankTag: "Password is required",
}

// --- Service Interface ---
type AuthService interface {
	// Login checks the form and opens a session for the browser. The
	// returned token goes into the session cookie.
	Login(ctx context.Context, browserID string, form LoginForm) (token string, user string, err error)
	// Resolve turns a session cookie into a Session. An invalid or expired
	// token yields a logged-out session and no error.
	Resolve(ctx context.Context, browserID, token string) (domain.Session, error)
	Logout(ctx context.Context, browserID string) error
}

// --- Service Implementation ---

type authService struct {
	prefs         PreferenceService
	validate      *validator.Validate
	jwtSecret     string
	jwtExpiration time.Duration
	clock         Clock
}

// NewAuthService creates a new instance of authService.
func NewAuthService(prefs PreferenceService, validate *validator.Validate, jwtSecret string, jwtExpiration time.Duration, clock Clock) AuthService {
	if jwtSecret == "" {
		panic("session secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &authService{
		prefs:         prefs,
		validate:      validate,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		clock:         clock,
	}
}

func (s *authService) Login(ctx context.Context, browserID string, form LoginForm) (string, string, error) {
	if err := validateStruct(s.validate, form, ErrInvalidCredentials, loginMessages); err != nil {
		return "", "", err
	}
	user := strings.TrimSpace(form.Username)

	token, err := s.generateJWT(browserID, user)
	if err != nil {
		return "", "", ErrTokenGeneration
	}
	if err := s.prefs.StartSession(ctx, browserID, user); err != nil {
		return "", "", err
	}
	return token, user, nil
}

func (s *authService) Resolve(ctx context.Context, browserID, token string) (domain.Session, error) {
	session := domain.Session{BrowserID: browserID}
	if token == "" {
		return session, nil
	}
	claims, err := s.parseJWT(token)
	if err != nil || claims.BrowserID != browserID {
		return session, nil
	}

	loggedIn, err := s.prefs.IsLoggedIn(ctx, browserID)
	if err != nil {
		return session, err
	}
	if !loggedIn {
		return session, nil
	}

	// The profile page may have renamed the user since the token was issued.
	user, err := s.prefs.CurrentUser(ctx, browserID)
	if err != nil {
		return session, err
	}
	if user == "" {
		user = claims.User
	}
	session.IsLoggedIn = true
	session.CurrentUser = user
	return session, nil
}

func (s *authService) Logout(ctx context.Context, browserID string) error {
	return s.prefs.EndSession(ctx, browserID)
}

// --- JWT Helper ---

// jwtClaims defines the structure of the session token payload.
type jwtClaims struct {
	BrowserID string `json:"bid"`
	User      string `json:"user"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(browserID, user string) (string, error) {
	now := s.clock.Now()
	claims := &jwtClaims{
		BrowserID: browserID,
		User:      user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "student-portal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) parseJWT(tokenString string) (*jwtClaims, error) {
	claims := &jwtClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	// Expiry is checked against the injected clock rather than time.Now.
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(s.clock.Now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
