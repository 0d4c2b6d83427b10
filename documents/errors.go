package documents

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is returned when the template path is not a readable file
	ErrTemplateNotFound = errors.New("report template not found")
	// ErrMalformedTemplate is returned when the template is not a valid docx archive.
	// The archive reader's error is wrapped alongside it.
	ErrMalformedTemplate = errors.New("malformed report template")
)

// RenderError is returned when the context does not fit the template, either
// because a placeholder has no value or because a value has the wrong shape.
type RenderError struct {
	// Placeholder is the template expression that failed, e.g. "volunteer.name".
	// Empty when it could not be determined.
	Placeholder string
	Part        string
	Err         error
}

func (e *RenderError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("failed to render %s: placeholder %q: %v", e.Part, e.Placeholder, e.Err)
	}
	return fmt.Sprintf("failed to render %s: %v", e.Part, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
