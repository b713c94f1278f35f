package resumes

import "errors"

// ErrNotFound indicates the resume does not exist.
var ErrNotFound = errors.New("resume not found")

// ErrForbidden indicates the resume belongs to another customer.
var ErrForbidden = errors.New("resume access forbidden")
