package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/uptrace/bun"

	"github.com/dennoAiden/swiper-venture/pkg/apperror"
)

// Column limits, mirrored by migrations/00001_contact_submissions.sql.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 120
	MaxPhoneLength   = 20
	MaxSubjectLength = 150
)

// ContactSubmission is one stored contact form message.
type ContactSubmission struct {
	bun.BaseModel `bun:"table:contact_submissions,alias:cs"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Phone     string    `bun:"phone,notnull" json:"phone"`
	Subject   string    `bun:"subject,notnull" json:"subject"`
	Message   string    `bun:"message,notnull" json:"message"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// SubmitRequest is the POST /api/contact body.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ErrFieldType reports a form field that is an object or an array.
var ErrFieldType = errors.New("field must be a string, number or boolean")

// UnmarshalJSON accepts scalar field values. Numbers keep their literal text,
// true becomes "true", and false, null and 0 read as missing.
func (r *SubmitRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := map[string]*string{
		"name":    &r.Name,
		"email":   &r.Email,
		"phone":   &r.Phone,
		"subject": &r.Subject,
		"message": &r.Message,
	}
	for key, dst := range fields {
		v, ok := raw[key]
		if !ok {
			continue
		}
		s, err := scalarText(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = s
	}
	return nil
}

func scalarText(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return "", nil
	}

	switch v[0] {
	case '"':
		var s string
		err := json.Unmarshal(v, &s)
		return s, err
	case '{', '[':
		return "", ErrFieldType
	case 'n', 'f':
		return "", nil
	case 't':
		return "true", nil
	}

	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return "", err
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		return "", nil
	}
	return n.String(), nil
}

// Normalize trims surrounding whitespace from every field.
func (r *SubmitRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// Validate expects a normalized request.
func (r *SubmitRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.Subject == "" || r.Message == "" {
		return apperror.NewBadRequest("All fields required")
	}

	limits := []struct {
		field string
		value string
		max   int
	}{
		{"name", r.Name, MaxNameLength},
		{"email", r.Email, MaxEmailLength},
		{"phone", r.Phone, MaxPhoneLength},
		{"subject", r.Subject, MaxSubjectLength},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return apperror.NewBadRequest(l.field + " is too long").
				WithDetails(map[string]any{"field": l.field, "max": l.max})
		}
	}

	if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		return apperror.NewBadRequest("email is invalid").
			WithDetails(map[string]any{"field": "email"})
	}

	return nil
}

// Submission builds the entity to persist.
func (r *SubmitRequest) Submission() *ContactSubmission {
	return &ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// Response is the body of every /api/contact reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
