package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
	// ErrSelfUnfollow is returned when a user tries to unfollow themselves.
	ErrSelfUnfollow = errors.New("cannot unfollow yourself")
	// ErrNotFollowing is returned when removing an edge that does not exist.
	ErrNotFollowing = errors.New("not following")
	// ErrForbidden is returned when the requester does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyExists marks a duplicate creation attempt.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials is returned by Authenticate on any mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFoundError names the missing resource and the key it was looked up by.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func userNotFound(username string) error {
	return &NotFoundError{Resource: "user", Key: username}
}

func tweetNotFound(id uint) error {
	return &NotFoundError{Resource: "tweet", Key: fmt.Sprint(id)}
}

// NonFieldKey collects errors that do not belong to a single input field.
const NonFieldKey = "non_field_errors"

// ValidationError carries per-field messages for form style rendering.
type ValidationError struct {
	Fields map[string][]string
	cause  error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Add appends a message for field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Has reports whether field already has an error.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func fieldError(field, msg string, cause error) *ValidationError {
	v := &ValidationError{cause: cause}
	v.Add(field, msg)
	return v
}
