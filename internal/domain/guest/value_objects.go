package guest

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrMissingName   = errors.New("first and last name are required")
	ErrInvalidGender = errors.New("gender must be male, female or other")
	ErrFieldTooLong  = errors.New("field exceeds maximum length")
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

func NewGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", ErrInvalidGender
	}
	return g, nil
}

const (
	maxPhoneLen    = 20
	maxLocationLen = 100
)

// optional trims s and returns nil when nothing is left.
func optional(s *string, maxLen int) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(v) > maxLen {
		return nil, ErrFieldTooLong
	}
	return &v, nil
}
