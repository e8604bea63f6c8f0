package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken is the parent of every verification failure except expiry.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the token cannot be parsed, uses an unexpected
	// algorithm or lacks the identity claims.
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrInvalidSignature indicates the token was not signed with our key.
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)

	// ErrExpiredToken indicates the token signature is valid but its lifetime is over
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrForbidden indicates an authenticated principal may not act on a resource.
	ErrForbidden = errors.New("forbidden")

	// ErrPasswordMismatch indicates the supplied password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong indicates a password exceeds what bcrypt can hash.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
