package service

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"authstarter/internal/domain/entity"
)

// TokenTypeBearer is the declared type of every token this service issues.
const TokenTypeBearer = "Bearer"

// Claims is the claim set embedded in issued tokens: the registered
// subject/issuer/iat/exp claims plus the principal's username and roles.
type Claims struct {
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim back into the account identifier.
func (c *Claims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// TokenIssuer builds and signs self-contained bearer tokens asserting a
// verified identity. Tokens are stateless: nothing is stored server-side
// and revocation before expiry is out of scope.
type TokenIssuer interface {
	// Issue signs a token for the given principal. The subject is the
	// account id, roles are embedded as claims, and expiration is the
	// issue time plus the configured TTL.
	Issue(principal *entity.Principal) (string, error)

	// Parse validates a token string against the signing key and returns
	// its claims. Used by verification collaborators and tests; this core
	// does not gate any route on it.
	Parse(tokenString string) (*Claims, error)
}
