package user

import (
	"strings"
	"unicode/utf8"

	"skill-swap-core/internal/pkg/errs"
)

const MaxNameLength = 100

var (
	ErrEmptyName         = errs.New("user name must not be empty")
	ErrNameTooLong       = errs.New("user name is too long")
	ErrAlreadyRegistered = errs.New("identity is already registered")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
