// AngelaMos | 2026
// codec.go

package token

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/angelamos/realty/internal/config"
	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/middleware"
)

const bearerPrefix = "Bearer "

// Codec issues and decodes session tokens signed with the process-wide
// secret. The secret never changes for the lifetime of the process, so
// every token issued by this instance verifies against the same key.
type Codec struct {
	key    jwk.Key
	config config.JWTConfig
}

func NewCodec(cfg config.JWTConfig) (*Codec, error) {
	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &Codec{
		key:    key,
		config: cfg,
	}, nil
}

// Issue builds a signed token for the given identity. The subject is
// the user's email; role and numeric user id ride along as custom
// claims.
func (c *Codec) Issue(email, role string, userID int64) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(c.config.Issuer).
		Audience([]string{c.config.Audience}).
		Subject(email).
		IssuedAt(now).
		Expiration(now.Add(c.config.AccessTokenExpire)).
		NotBefore(now).
		Claim("role", role).
		Claim("uid", userID).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), c.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// Decode verifies a raw token and returns the session claims. A
// leading "Bearer " prefix is tolerated so callers can hand over the
// Authorization header value unmodified.
func (c *Codec) Decode(
	ctx context.Context,
	raw string,
) (*middleware.SessionClaims, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
	if raw == "" {
		return nil, fmt.Errorf("decode token: empty token: %w", core.ErrTokenInvalid)
	}

	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.HS256(), c.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(c.config.Issuer),
		jwt.WithAudience(c.config.Audience),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("decode token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("decode token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"decode token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var roleStr string
	if err := token.Get("role", &roleStr); err != nil || roleStr == "" {
		return nil, fmt.Errorf(
			"decode token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	var uidFloat float64
	if err := token.Get("uid", &uidFloat); err != nil {
		return nil, fmt.Errorf(
			"decode token: missing uid claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.SessionClaims{
		UserID: int64(uidFloat),
		Email:  subject,
		Role:   roleStr,
	}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
