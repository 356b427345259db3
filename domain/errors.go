package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContent indicates an attempt to save a post without content.
	ErrEmptyContent = errors.New("post content cannot be empty")

	// ErrRateLimited indicates the GitHub API rejected the request (403).
	ErrRateLimited = errors.New("rate limited by GitHub API")

	// ErrUserNotFound indicates the GitHub user does not exist (404).
	ErrUserNotFound = errors.New("GitHub user not found")
)

// APIError is a non-2xx response that is neither a rate limit nor a
// missing user.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error (%d)", e.Status)
}
