// Package auth provides token issuance/verification, password hashing, and
// the bearer-token middleware shared by both services.
//
// Tokens are HS256 JWTs signed with a process-wide secret. The same secret
// must be configured for every service that verifies the tokens; each
// service validates signatures independently, with no callback to the users
// service. Tokens carry no expiry: they are valid until the secret rotates.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLen guards against accidentally running with a trivial secret.
const minSecretLen = 16

// Identity is the result of verifying a token: the subject (stringified
// user id) plus any auxiliary string claims embedded at issuance.
type Identity struct {
	Subject string
	Claims  map[string]string
}

// Email returns the auxiliary email claim, if one was issued.
func (id *Identity) Email() string {
	return id.Claims["email"]
}

// TokenService signs and verifies identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService from the shared signing secret.
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("auth: signing secret must be at least %d characters", minSecretLen)
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue signs a token embedding the subject and the given auxiliary claims.
// Claim keys must not collide with registered JWT claim names ("sub" is
// reserved for the subject). No expiry is set.
func (s *TokenService) Issue(subject string, claims map[string]string) (string, error) {
	if subject == "" {
		return "", errors.New("auth: token subject must not be empty")
	}

	mc := jwt.MapClaims{"sub": subject}
	for k, v := range claims {
		if k == "sub" {
			continue
		}
		mc[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and returns the identity it carries.
//
// Only HS256 is accepted; tokens signed with any other method are rejected
// regardless of signature validity. A verification failure is terminal for
// the request — callers map it to an authentication-rejected response and
// never retry.
func (s *TokenService) Verify(tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(
		tokenStr,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("auth: invalid token claims")
	}

	subject, err := mc.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("auth: token has no subject")
	}

	claims := make(map[string]string)
	for k, v := range mc {
		if k == "sub" {
			continue
		}
		if str, ok := v.(string); ok {
			claims[k] = str
		}
	}

	return &Identity{Subject: subject, Claims: claims}, nil
}
