package vcard

import "errors"

var (
	ErrEmptyName      = errors.New("contact needs a formatted name or a first/last name")
	ErrInvalidContact = errors.New("invalid contact file")
)
