package auth

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrSessionCookieNotFound = errors.New("session cookie not found")
	ErrProviderNotSupported  = errors.New("identity provider not supported")
	ErrProviderVerification  = errors.New("identity provider verification failed")
	ErrEmailAlreadyExists    = errors.New("email already registered")
)
