package checkout

import (
	"regexp"
	"strings"
	"unicode"
)

// Field names the checkout form's known inputs. The set is closed so the
// validator's contract stays exhaustively checkable.
type Field string

const (
	FieldFirstName      Field = "firstName"
	FieldLastName       Field = "lastName"
	FieldEmail          Field = "email"
	FieldPhoneNumber    Field = "phoneNumber"
	FieldCardNumber     Field = "cardNumber"
	FieldExpirationDate Field = "expirationDate"
	FieldCVV            Field = "cvv"
	FieldBillingAddress Field = "billingAddress"
)

// AllFields lists every known field in form order.
var AllFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhoneNumber,
	FieldCardNumber,
	FieldExpirationDate,
	FieldCVV,
	FieldBillingAddress,
}

// GuestAndPaymentForm holds guest contact and payment inputs as typed by
// the user. It is never persisted beyond the submission attempt.
type GuestAndPaymentForm struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	CardNumber     string
	ExpirationDate string
	CVV            string
	BillingAddress string
}

// FieldErrors is a fixed-shape record with one optional message slot per
// known field; an empty string means the field currently passes.
type FieldErrors struct {
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	BillingAddress string `json:"billingAddress,omitempty"`
}

func (e FieldErrors) IsEmpty() bool {
	return e == FieldErrors{}
}

func (e FieldErrors) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return e.FirstName
	case FieldLastName:
		return e.LastName
	case FieldEmail:
		return e.Email
	case FieldPhoneNumber:
		return e.PhoneNumber
	case FieldCardNumber:
		return e.CardNumber
	case FieldExpirationDate:
		return e.ExpirationDate
	case FieldCVV:
		return e.CVV
	case FieldBillingAddress:
		return e.BillingAddress
	default:
		return ""
	}
}

func (e *FieldErrors) set(f Field, msg string) {
	switch f {
	case FieldFirstName:
		e.FirstName = msg
	case FieldLastName:
		e.LastName = msg
	case FieldEmail:
		e.Email = msg
	case FieldPhoneNumber:
		e.PhoneNumber = msg
	case FieldCardNumber:
		e.CardNumber = msg
	case FieldExpirationDate:
		e.ExpirationDate = msg
	case FieldCVV:
		e.CVV = msg
	case FieldBillingAddress:
		e.BillingAddress = msg
	}
}

// FailingFields returns the fields that currently carry an error message.
func (e FieldErrors) FailingFields() []Field {
	var failing []Field
	for _, f := range AllFields {
		if e.Get(f) != "" {
			failing = append(failing, f)
		}
	}
	return failing
}

// local@domain.tld shape: one-plus chars, @, one-plus chars, dot, one-plus chars
var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

const (
	minCardDigits = 16
	minCVVLength  = 3
)

// Validate runs every field rule against the current form values. It is
// pure and total: the same form always yields the same error set.
func Validate(form GuestAndPaymentForm) FieldErrors {
	var errs FieldErrors
	for _, f := range AllFields {
		errs.set(f, ValidateField(form, f))
	}
	return errs
}

// ValidateField evaluates a single field's rule, so a field's error can
// clear on edit without re-running the other fields' rules. Returns an
// empty string when the field passes.
func ValidateField(form GuestAndPaymentForm, f Field) string {
	switch f {
	case FieldFirstName:
		if strings.TrimSpace(form.FirstName) == "" {
			return "First name is required"
		}
	case FieldLastName:
		if strings.TrimSpace(form.LastName) == "" {
			return "Last name is required"
		}
	case FieldEmail:
		if strings.TrimSpace(form.Email) == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(form.Email) {
			return "Email is invalid"
		}
	case FieldPhoneNumber:
		if strings.TrimSpace(form.PhoneNumber) == "" {
			return "Phone number is required"
		}
	case FieldCardNumber:
		if len(stripWhitespace(form.CardNumber)) < minCardDigits {
			return "Card number must be at least 16 digits"
		}
	case FieldExpirationDate:
		if strings.TrimSpace(form.ExpirationDate) == "" {
			return "Expiration date is required"
		}
	case FieldCVV:
		if form.CVV == "" {
			return "CVV is required"
		}
		if len(form.CVV) < minCVVLength {
			return "CVV must be at least 3 digits"
		}
	case FieldBillingAddress:
		if strings.TrimSpace(form.BillingAddress) == "" {
			return "Billing address is required"
		}
	}
	return ""
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
