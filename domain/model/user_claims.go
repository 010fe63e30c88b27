package model

import "github.com/golang-jwt/jwt"

// UserClaims is the JWT payload issued at login. Only the user id travels in
// the token; the middleware resolves the rest from the users collection.
type UserClaims struct {
	UserID string `json:"_id"`
	jwt.StandardClaims
}
