package utils // package utils provides helper functions for token creation and hashing

import (
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  The token is a stateless bearer credential:
// nothing about it is persisted server-side, so its claims carry everything
// the middleware needs to validate a request.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  Besides the
// subject and the timestamps, the claims embed a fixed issuer and audience;
// the validating middleware rejects tokens whose iss/aud do not match the
// configured values, so a token minted for another deployment of this
// service is useless here even when the secrets happen to match.
func NewAccessToken(secret, issuer, audience, subject string, ttlMin int) (AccessToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub": subject,
        "iss": issuer,
        "aud": audience,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    // Create a new token object specifying the signing method (HS256) and
    // include the claims, then sign it with the shared secret.
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}
