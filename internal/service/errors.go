package service

import "errors"

// Upstream and user-input error kinds. Everything the upstream client can
// fail with is classified into one of these at the boundary; the matching,
// extraction and pagination logic itself never fails on well-formed input.
var (
	ErrNetworkTimeout    = errors.New("recipe service timed out")
	ErrNetworkFailure    = errors.New("could not reach recipe service")
	ErrUpstreamAuth      = errors.New("recipe service rejected the API key")
	ErrUpstreamQuota     = errors.New("recipe service quota exceeded")
	ErrUpstreamMalformed = errors.New("recipe service returned a malformed response")
	ErrUpstreamFailure   = errors.New("recipe service request failed")

	ErrNoIngredients  = errors.New("no ingredients provided")
	ErrNoActiveSearch = errors.New("no active search in this session")
	ErrRecipeNotFound = errors.New("recipe not found")

	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrVerificationInvalid = errors.New("verification code is invalid or expired")
)
