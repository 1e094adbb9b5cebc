package sections

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Zachkp/folio/internal/locale"
)

var emailPattern = regexp.MustCompile(`(?i)^\S+@\S+$`)

// ContactForm is a submitted contact message.
type ContactForm struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

// FieldErrors maps a form field to the message key explaining what is wrong
// with it.
type FieldErrors map[string]string

// Validate checks the form the way the page does before submitting: every
// field is required and the email must look like one.
func (f ContactForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "contact.form.required"
	}
	switch email := strings.TrimSpace(f.Email); {
	case email == "":
		errs["email"] = "contact.form.required"
	case !emailPattern.MatchString(email):
		errs["email"] = "contact.form.invalidEmail"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "contact.form.required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Localize renders every field error in t's language.
func (e FieldErrors) Localize(t locale.Translator) map[string]string {
	out := make(map[string]string, len(e))
	for field, key := range e {
		out[field] = t.T(key)
	}
	return out
}

// Status is the outcome of a contact submission.
type Status string

// Submission states.
const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Submitter delivers a validated contact message.
type Submitter interface {
	Submit(ctx context.Context, f ContactForm) error
}

// SubmitFunc adapts a func to Submitter.
type SubmitFunc func(ctx context.Context, f ContactForm) error

// Submit implements Submitter.
func (fn SubmitFunc) Submit(ctx context.Context, f ContactForm) error {
	return fn(ctx, f)
}

// Delay is the stand-in delivery: it waits d and succeeds. Nothing is sent
// anywhere.
func Delay(d time.Duration) SubmitFunc {
	return func(ctx context.Context, _ ContactForm) error {
		if d <= 0 {
			return ctx.Err()
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "contact submission")
		}
	}
}

// ContactResult is what the form shows after a submit attempt.
type ContactResult struct {
	Status Status
	Errors FieldErrors
	Err    error
}

// Message returns the status line for r in t's language, empty while idle.
func (r ContactResult) Message(t locale.Translator) string {
	switch r.Status {
	case StatusSuccess:
		return t.T("contact.form.success")
	case StatusError:
		return t.T("contact.form.error")
	}
	return ""
}

// SubmitContact validates f and hands it to s. An invalid form is never
// submitted and leaves the status idle; a delivery failure becomes
// StatusError.
func SubmitContact(ctx context.Context, s Submitter, f ContactForm) ContactResult {
	if errs := f.Validate(); errs != nil {
		return ContactResult{Status: StatusIdle, Errors: errs}
	}
	if err := s.Submit(ctx, f); err != nil {
		return ContactResult{Status: StatusError, Err: err}
	}
	return ContactResult{Status: StatusSuccess}
}
