// Package rsvp holds the attendance record, its phone formatting and
// validation rules, and the client that posts it to the form endpoint.
package rsvp

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Guest count limits, the guest included.
const (
	MinGuests = 1
	MaxGuests = 5
)

// Record is the attendance confirmation entered by the guest.
type Record struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Guests int    `json:"guests"`
}

// NewRecord returns the empty record a session starts with.
func NewRecord() Record {
	return Record{Guests: MinGuests}
}

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeName trims s and composes accents (NFC), so a name typed with
// combining marks reaches the form owner spelled like the precomposed one.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// FormatPhone masks the digits of s as a Brazilian phone number while typing.
// Ten digits become (DD) DDDD-DDDD and eleven become (DD) DDDDD-DDDD; shorter
// input is masked only as far as its groups are complete. Digits past the
// eleventh stay in the last group, so ValidatePhone still rejects them.
func FormatPhone(s string) string {
	d := Digits(s)

	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case n <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// GuestLabel is the option text shown for a guest count.
func GuestLabel(n int) string {
	if n == 1 {
		return "1 Entrada"
	}
	return strconv.Itoa(n) + " Entradas"
}
