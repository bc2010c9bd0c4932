package naver

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingCredentials = errors.New("naver client id and secret are required")
	ErrEmptyQuery         = errors.New("search query is empty")

	// upstream status errors
	ErrUnauthorized = errors.New("naver api credentials rejected")
	ErrForbidden    = errors.New("naver api access forbidden, check service registration")
	ErrRateLimited  = errors.New("naver api rate limit exceeded")
)

// WrapError adds context to an upstream error.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, message)
}

// WrapErrorf adds formatted context to an upstream error.
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
