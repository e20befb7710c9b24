package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/api-blog/models"
)

// Field names as they appear in request and response bodies.
const (
	FieldTitle     = "title"
	FieldText      = "text"
	FieldPublished = "published"
)

// PostValidator validates [models.PostInput] values.
//
// Every provided (non-nil) field is always checked. Field names passed to
// Validate mark fields that must be present; creation passes FieldTitle and
// FieldText, partial updates pass nothing.
type PostValidator struct{}

// NewPostValidator constructs a PostValidator.
func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(_ context.Context, obj any, required ...string) error {
	switch value := obj.(type) {
	case models.PostInput:
		return v.validatePostInput(value, required...)
	case *models.PostInput:
		return v.validatePostInput(*value, required...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePostInput(in models.PostInput, required ...string) error {
	verr := NewValidationError()

	for field, msg := range in.Invalid {
		verr.Add(field, msg)
	}

	for _, field := range required {
		if _, unreadable := in.Invalid[field]; unreadable {
			continue
		}

		switch field {
		case FieldTitle:
			if in.Title == nil {
				verr.Add(FieldTitle, MsgRequired)
			}
		case FieldText:
			if in.Text == nil {
				verr.Add(FieldText, MsgRequired)
			}
		case FieldPublished:
			if in.Published == nil {
				verr.Add(FieldPublished, MsgRequired)
			}
		}
	}

	if in.Title != nil {
		switch {
		case *in.Title == "":
			verr.Add(FieldTitle, MsgBlank)
		case utf8.RuneCountInString(*in.Title) > models.TitleMaxLength:
			verr.Add(FieldTitle, maxLengthMessage(models.TitleMaxLength))
		}
	}

	if in.Text != nil && *in.Text == "" {
		verr.Add(FieldText, MsgBlank)
	}

	return verr.OrNil()
}

// NormalizePostInput trims surrounding whitespace from the text fields of in.
// Validation runs on the normalized value, so whitespace-only fields are blank.
func NormalizePostInput(in models.PostInput) models.PostInput {
	out := in
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		out.Title = &title
	}
	if in.Text != nil {
		text := strings.TrimSpace(*in.Text)
		out.Text = &text
	}
	return out
}

func maxLengthMessage(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}
