// Package passwordgate protects the whole site behind one shared password.
//
// A successful login is remembered in an HS256-signed JWT carried by the
// session cookie. Nothing is stored server side, so a token stays valid until
// it expires or the signing secret changes.
package passwordgate

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	apperrors "github.com/louisbranch/translate.space/internal/platform/errors"
	"github.com/louisbranch/translate.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translate.space/internal/services/web/platform/sessioncookie"
)

const (
	issuer  = "translate.space"
	subject = "password-gate"

	// DefaultTTL is the session lifetime when none is configured.
	DefaultTTL = 12 * time.Hour

	secretSize = 32
)

var (
	// ErrPasswordEmpty indicates the login form was submitted blank.
	ErrPasswordEmpty = apperrors.New(apperrors.CodePasswordEmpty, "비밀번호를 입력해주세요.")
	// ErrPasswordInvalid indicates the submitted password did not match.
	ErrPasswordInvalid = apperrors.New(apperrors.CodePasswordInvalid, "비밀번호가 올바르지 않습니다.")
)

// Config configures a Gate.
type Config struct {
	// Password enables the gate when non-empty.
	Password string
	// Secret signs session tokens. Empty generates a per-process secret.
	Secret       []byte
	TTL          time.Duration
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time
}

// Gate checks passwords and session tokens.
type Gate struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	policy   requestmeta.SchemePolicy
	now      func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Authenticated bool `json:"auth"`
}

// New builds a Gate from cfg.
func New(cfg Config) (*Gate, error) {
	secret := append([]byte(nil), cfg.Secret...)
	if len(secret) == 0 {
		secret = make([]byte, secretSize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Gate{
		password: []byte(cfg.Password),
		secret:   secret,
		ttl:      ttl,
		policy:   cfg.SchemePolicy,
		now:      now,
	}, nil
}

// Enabled reports whether a password is configured.
func (g *Gate) Enabled() bool {
	return g != nil && len(g.password) > 0
}

// TTL returns the session lifetime.
func (g *Gate) TTL() time.Duration {
	return g.ttl
}

// CheckPassword compares submitted with the configured password by exact
// equality.
func (g *Gate) CheckPassword(submitted string) error {
	if submitted == "" {
		return ErrPasswordEmpty
	}
	if subtle.ConstantTimeCompare([]byte(submitted), g.password) != 1 {
		return ErrPasswordInvalid
	}
	return nil
}

// Issue signs a new authenticated session token.
func (g *Gate) Issue() (string, error) {
	issuedAt := g.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(g.ttl)),
		},
		Authenticated: true,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify reports whether token is a valid, unexpired authenticated session.
func (g *Gate) Verify(token string) error {
	if token == "" {
		return errors.New("session token is required")
	}
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		return fmt.Errorf("verify session token: %w", err)
	}
	if !claims.Authenticated {
		return errors.New("session token is not authenticated")
	}
	return nil
}

// Authenticated reports whether r may pass the gate. Every request passes when
// the gate is disabled.
func (g *Gate) Authenticated(r *http.Request) bool {
	if !g.Enabled() {
		return true
	}
	token, ok := sessioncookie.Read(r)
	if !ok {
		return false
	}
	return g.Verify(token) == nil
}

// SignIn issues a session token and stores it in the session cookie.
func (g *Gate) SignIn(w http.ResponseWriter, r *http.Request) error {
	token, err := g.Issue()
	if err != nil {
		return err
	}
	sessioncookie.Write(w, r, token, g.ttl, g.policy)
	return nil
}

// SignOut clears the session cookie.
func (g *Gate) SignOut(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r, g.policy)
}
