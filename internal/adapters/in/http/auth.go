package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key carrying the authenticated claims.
const claimsContextKey = "operatorClaims"

// AuthClaims are the JWT claims issued to warehouse staff.
type AuthClaims struct {
	OperatorID string `json:"operatorId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 staff tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenManager creates a TokenManager signing with the given secret.
func NewTokenManager(secret string, ttl time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// Generate creates a signed token for an operator.
func (m *TokenManager) Generate(operatorID kernel.UUID, name, role string) (string, error) {
	now := time.Now()

	claims := &AuthClaims{
		OperatorID: operatorID.String(),
		Name:       name,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate verifies a token string and returns its claims.
func (m *TokenManager) Validate(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get("Authorization")
	if header == "" {
		return "", errors.New("authorization header required")
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid authorization format")
	}

	return parts[1], nil
}

// Authenticate validates the bearer token and stores the claims on the context.
func (m *TokenManager) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, err := bearerToken(ctx)
		if err != nil {
			return unauthorized(ctx, err.Error())
		}

		claims, err := m.Validate(token)
		if err != nil {
			return unauthorized(ctx, "invalid or expired token")
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// Role strings carried in staff tokens.
const (
	roleAdmin  = "admin"
	rolePicker = "picker"
	rolePacker = "packer"
)

// roleAllowed reports whether the authenticated caller holds one of the
// allowed roles.
func roleAllowed(ctx echo.Context, allowedRoles ...string) bool {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return false
	}

	for _, role := range allowedRoles {
		if claims.Role == role {
			return true
		}
	}

	return false
}

// forbidden writes the response for a caller outside the allowed roles.
func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, servers.Error{
		Code:    http.StatusForbidden,
		Message: "insufficient permissions",
	})
}

// ClaimsFromContext returns the authenticated claims stored by Authenticate.
func ClaimsFromContext(ctx echo.Context) (*AuthClaims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(*AuthClaims)
	return claims, ok
}

// callerOperatorID returns the authenticated caller's operator identifier,
// nil when there are no claims or the identifier does not parse.
func callerOperatorID(ctx echo.Context) *kernel.UUID {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil
	}

	id, err := kernel.UUIDFromString(claims.OperatorID)
	if err != nil {
		return nil
	}

	return &id
}
