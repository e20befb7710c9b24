package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/api-blog/internal/validators"
	"github.com/MKhiriev/api-blog/models"
)

const (
	contentTypeJSON      = "application/json"
	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"

	// maxBodyBytes bounds every request body, multipart included.
	maxBodyBytes = 1 << 20
)

var (
	trueValues  = map[string]bool{"t": true, "T": true, "y": true, "Y": true, "yes": true, "Yes": true, "YES": true, "true": true, "True": true, "TRUE": true, "on": true, "On": true, "ON": true, "1": true}
	falseValues = map[string]bool{"f": true, "F": true, "n": true, "N": true, "no": true, "No": true, "NO": true, "false": true, "False": true, "FALSE": true, "off": true, "Off": true, "OFF": true, "0": true}
)

// requestFields is a decoded request body. Exactly one of members (JSON) or
// form (url-encoded or multipart) is set; both are nil for an empty body.
type requestFields struct {
	members map[string]json.RawMessage
	form    url.Values
}

// decodeRequestFields reads the body of r according to its Content-Type.
// A missing Content-Type is read as JSON.
func decodeRequestFields(w http.ResponseWriter, r *http.Request) (requestFields, error) {
	mediaType := contentTypeJSON
	if header := r.Header.Get("Content-Type"); header != "" {
		parsed, _, err := mime.ParseMediaType(header)
		if err != nil {
			return requestFields{}, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, header)
		}
		mediaType = parsed
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	switch mediaType {
	case contentTypeJSON:
		return decodeJSONFields(r.Body)
	case contentTypeForm:
		if err := r.ParseForm(); err != nil {
			return requestFields{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return requestFields{form: r.PostForm}, nil
	case contentTypeMultipart:
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return requestFields{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return requestFields{form: r.PostForm}, nil
	default:
		return requestFields{}, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mediaType)
	}
}

func decodeJSONFields(body io.Reader) (requestFields, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return requestFields{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return requestFields{}, nil
	}
	if raw[0] != '{' {
		return requestFields{}, fmt.Errorf("%w: JSON body must be an object", ErrMalformedBody)
	}

	var members map[string]json.RawMessage
	if err = json.Unmarshal(raw, &members); err != nil {
		return requestFields{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return requestFields{members: members}, nil
}

// text returns the named field read as a string. Numbers are accepted and
// kept in their literal form. problem is set when the field is present but
// unreadable.
func (f requestFields) text(name string) (value string, present bool, problem string) {
	if f.form != nil {
		values, ok := f.form[name]
		if !ok || len(values) == 0 {
			return "", false, ""
		}
		return values[0], true, ""
	}

	raw, ok := f.members[name]
	if !ok {
		return "", false, ""
	}

	v, err := decodeJSONValue(raw)
	if err != nil {
		return "", true, validators.MsgNotAString
	}
	switch x := v.(type) {
	case nil:
		return "", true, validators.MsgNull
	case string:
		return x, true, ""
	case json.Number:
		return x.String(), true, ""
	default:
		return "", true, validators.MsgNotAString
	}
}

// boolean returns the named field read as a boolean. Besides JSON booleans
// it accepts the usual textual spellings ("true", "yes", "on", "1", ...)
// and the numbers 0 and 1.
func (f requestFields) boolean(name string) (value, present bool, problem string) {
	if f.form != nil {
		values, ok := f.form[name]
		if !ok || len(values) == 0 {
			return false, false, ""
		}
		b, ok := parseBool(values[0])
		if !ok {
			return false, true, validators.MsgNotABoolean
		}
		return b, true, ""
	}

	raw, ok := f.members[name]
	if !ok {
		return false, false, ""
	}

	v, err := decodeJSONValue(raw)
	if err != nil {
		return false, true, validators.MsgNotABoolean
	}
	switch x := v.(type) {
	case nil:
		return false, true, validators.MsgNull
	case bool:
		return x, true, ""
	case string:
		if b, ok := parseBool(x); ok {
			return b, true, ""
		}
	case json.Number:
		if n, err := strconv.ParseFloat(x.String(), 64); err == nil && (n == 0 || n == 1) {
			return n == 1, true, ""
		}
	}
	return false, true, validators.MsgNotABoolean
}

func decodeJSONValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func parseBool(s string) (value, ok bool) {
	switch {
	case trueValues[s]:
		return true, true
	case falseValues[s]:
		return false, true
	default:
		return false, false
	}
}

// decodePostInput reads the client-mutable post fields from r. Fields of
// the wrong type end up in PostInput.Invalid; any other field is ignored.
func decodePostInput(w http.ResponseWriter, r *http.Request) (models.PostInput, error) {
	fields, err := decodeRequestFields(w, r)
	if err != nil {
		return models.PostInput{}, err
	}

	var input models.PostInput
	invalid := func(field, problem string) {
		if input.Invalid == nil {
			input.Invalid = make(map[string]string)
		}
		input.Invalid[field] = problem
	}

	if value, present, problem := fields.text(validators.FieldTitle); problem != "" {
		invalid(validators.FieldTitle, problem)
	} else if present {
		input.Title = &value
	}

	if value, present, problem := fields.text(validators.FieldText); problem != "" {
		invalid(validators.FieldText, problem)
	} else if present {
		input.Text = &value
	}

	if value, present, problem := fields.boolean(validators.FieldPublished); problem != "" {
		invalid(validators.FieldPublished, problem)
	} else if present {
		input.Published = &value
	}

	return input, nil
}

// decodeStrings reads the named text fields of r. Unreadable fields are
// reported as a *validators.ValidationError.
func decodeStrings(w http.ResponseWriter, r *http.Request, names ...string) (map[string]string, error) {
	fields, err := decodeRequestFields(w, r)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(names))
	verr := validators.NewValidationError()
	for _, name := range names {
		value, _, problem := fields.text(name)
		if problem != "" {
			verr.Add(name, problem)
			continue
		}
		values[name] = value
	}

	if err = verr.OrNil(); err != nil {
		return nil, err
	}
	return values, nil
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	values, err := decodeStrings(w, r, validators.FieldUsername, validators.FieldPassword)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{
		Username: values[validators.FieldUsername],
		Password: values[validators.FieldPassword],
	}, nil
}
