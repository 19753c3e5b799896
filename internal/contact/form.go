// Package contact models the contact form and hands submissions to a Relay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field names as posted by the form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Sentinel errors. A failed Submit wraps exactly one of them.
var (
	ErrMissingField = errors.New("required field missing")
	ErrDelivery     = errors.New("message delivery failed")
)

// Submission is one filled-in form.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Missing returns the names of required fields that are blank.
func (s Submission) Missing() []string {
	var missing []string
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(s.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if strings.TrimSpace(s.Message) == "" {
		missing = append(missing, FieldMessage)
	}
	return missing
}

// Receipt acknowledges a delivered submission.
type Receipt struct {
	ID uuid.UUID
	At time.Time
}

// Relay delivers submissions somewhere a person will read them.
type Relay interface {
	Deliver(ctx context.Context, id uuid.UUID, s Submission) error
}

// Form holds the current field values between submissions.
type Form struct {
	Values Submission
	now    func() time.Time
}

// NewForm returns a form pre-filled with values.
func NewForm(values Submission) *Form {
	return &Form{Values: values, now: time.Now}
}

// Submit validates the current values and hands them to relay.
//
// A blank field returns ErrMissingField and a relay failure ErrDelivery;
// either way the values stay put and no Receipt is issued. On success the
// values are cleared and exactly one Receipt is returned.
func (f *Form) Submit(ctx context.Context, relay Relay) (*Receipt, error) {
	if missing := f.Values.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	id := uuid.New()
	if err := relay.Deliver(ctx, id, f.Values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	f.Values = Submission{}
	return &Receipt{ID: id, At: f.now()}, nil
}
