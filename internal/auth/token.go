package auth

import (
	"errors"
	"time"

	"github.com/alumnihub/alumnihub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims plus the account email. The
// account id travels in the standard Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Identity is the verified content of a token: who the bearer is.
type Identity struct {
	AccountID string
	Email     string
}

// TokenManager issues and verifies HS256-signed bearer tokens. Validity
// is determined entirely by signature and expiry; the server keeps no
// session state.
type TokenManager struct {
	secretKey []byte
	validity  time.Duration
}

func NewTokenManager(secretKey string, validity time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: []byte(secretKey),
		validity:  validity,
	}
}

// Issue signs a token for the account with issued-at set to now and
// expiry derived from the configured lifetime.
func (m *TokenManager) Issue(accountID, email string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// identity it carries. Expiry is reported as common.ErrTokenExpired; any
// other structural or signature failure as common.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{AccountID: claims.Subject, Email: claims.Email}, nil
}
