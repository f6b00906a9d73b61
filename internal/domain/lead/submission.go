package lead

import (
	"net/mail"
	"strings"
)

const (
	MinMessageLength = 10
	MaxMessageLength = 2000
	MaxFieldLength   = 200
	MinFieldLength   = 2

	// Below this many digits a number cannot be a deliverable US phone, so the
	// customer SMS channel is skipped entirely.
	MinSMSDigits = 10
)

const (
	NewCustomerYes = "yes"
	NewCustomerNo  = "no"
)

// FieldError describes a single rejected field with a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found in a submission, not
// just the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasField reports whether any violation was recorded for the given field.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Submission is a validated lead inquiry. The intake form combines contact
// name and phone into one free-text field by the convention "Name - Phone".
type Submission struct {
	nameAndPhone      string
	email             string
	newCustomer       string
	petsNameAndBreed  string
	dateTimeRequested string
	message           string
}

// NewSubmission trims and validates the raw form values, collecting all field
// violations before failing. Field names in the returned error match the JSON
// payload keys.
func NewSubmission(nameAndPhone, email, newCustomer, petsNameAndBreed, dateTimeRequested, message string) (Submission, *ValidationError) {
	nameAndPhone = strings.TrimSpace(nameAndPhone)
	email = strings.TrimSpace(email)
	newCustomer = strings.ToLower(strings.TrimSpace(newCustomer))
	petsNameAndBreed = strings.TrimSpace(petsNameAndBreed)
	dateTimeRequested = strings.TrimSpace(dateTimeRequested)
	message = strings.TrimSpace(message)

	verr := &ValidationError{}

	switch {
	case nameAndPhone == "":
		verr.add("nameAndPhone", "name and phone number are required")
	case len(nameAndPhone) < MinFieldLength || len(nameAndPhone) > MaxFieldLength:
		verr.add("nameAndPhone", "name and phone must be between 2 and 200 characters")
	}

	if email == "" {
		verr.add("email", "email address is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		verr.add("email", "email address is not valid")
	}

	if newCustomer != NewCustomerYes && newCustomer != NewCustomerNo {
		verr.add("newCustomer", `newCustomer must be "yes" or "no"`)
	}

	switch {
	case petsNameAndBreed == "":
		verr.add("petsNameAndBreed", "pet name and breed are required")
	case len(petsNameAndBreed) < MinFieldLength || len(petsNameAndBreed) > MaxFieldLength:
		verr.add("petsNameAndBreed", "pet name and breed must be between 2 and 200 characters")
	}

	if len(dateTimeRequested) > MaxFieldLength {
		verr.add("dateTimeRequested", "requested date/time must be at most 200 characters")
	}

	switch {
	case message == "":
		verr.add("message", "message is required")
	case len(message) < MinMessageLength:
		verr.add("message", "message must be at least 10 characters")
	case len(message) > MaxMessageLength:
		verr.add("message", "message must be at most 2000 characters")
	}

	if len(verr.Fields) > 0 {
		return Submission{}, verr
	}

	return Submission{
		nameAndPhone:      nameAndPhone,
		email:             email,
		newCustomer:       newCustomer,
		petsNameAndBreed:  petsNameAndBreed,
		dateTimeRequested: dateTimeRequested,
		message:           message,
	}, nil
}

func (s Submission) NameAndPhone() string      { return s.nameAndPhone }
func (s Submission) Email() string             { return s.email }
func (s Submission) NewCustomer() string       { return s.newCustomer }
func (s Submission) PetsNameAndBreed() string  { return s.petsNameAndBreed }
func (s Submission) DateTimeRequested() string { return s.dateTimeRequested }
func (s Submission) Message() string           { return s.message }

func (s Submission) IsNewCustomer() bool { return s.newCustomer == NewCustomerYes }

// ContactName returns the portion before the last " - " separator, or the
// whole field when no separator is present.
func (s Submission) ContactName() string {
	if idx := strings.LastIndex(s.nameAndPhone, " - "); idx >= 0 {
		return strings.TrimSpace(s.nameAndPhone[:idx])
	}
	return s.nameAndPhone
}

// PhoneDigits extracts the digits of the phone portion of the combined field.
// When the "Name - Phone" convention was not followed the whole field is
// scanned, which still yields the right digits for inputs like "Jane 555-867-5309".
func (s Submission) PhoneDigits() string {
	part := s.nameAndPhone
	if idx := strings.LastIndex(part, " - "); idx >= 0 {
		part = part[idx+3:]
	}
	var b strings.Builder
	for _, r := range part {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CanReceiveSMS reports whether the parsed phone number has enough digits to
// be worth an SMS attempt.
func (s Submission) CanReceiveSMS() bool {
	return len(s.PhoneDigits()) >= MinSMSDigits
}
