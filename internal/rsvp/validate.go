package rsvp

import "strings"

// Field identifies a form field for error reporting.
type Field string

const (
	FieldName   Field = "name"
	FieldPhone  Field = "phone"
	FieldGuests Field = "guests"
)

// Messages shown under each field.
const (
	MsgNameRequired  = "Nome é obrigatório"
	MsgPhoneRequired = "Telefone é obrigatório"
	MsgPhoneInvalid  = "Telefone inválido (deve ter 10 ou 11 dígitos)"
	MsgGuestsRange   = "Entre 1 e 5 acompanhantes"
)

// FieldErrors maps a field to its validation message.
type FieldErrors map[Field]string

// Empty reports whether there are no errors.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Get returns the message for f, or "".
func (e FieldErrors) Get(f Field) string {
	return e[f]
}

// Validate checks r and returns one message per invalid field.
func Validate(r Record) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(r.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if err := ValidatePhone(r.Phone); err != "" {
		errs[FieldPhone] = err
	}

	if r.Guests < MinGuests || r.Guests > MaxGuests {
		errs[FieldGuests] = MsgGuestsRange
	}

	return errs
}

// ValidatePhone returns the phone field message for s, or "" when valid.
func ValidatePhone(s string) string {
	digits := Digits(s)
	switch {
	case digits == "":
		return MsgPhoneRequired
	case len(digits) != 10 && len(digits) != 11:
		return MsgPhoneInvalid
	}
	return ""
}
