package session

import (
	"crypto/subtle"
)

// Credentials is the single configured admin identity.
type Credentials struct {
	Username string
	Password string
}

// Validator checks submitted credentials against the configured identity.
// Both fields must match exactly, case-sensitive.
type Validator struct {
	admin Credentials
}

func NewValidator(admin Credentials) *Validator {
	return &Validator{admin: admin}
}

func (v *Validator) Validate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.admin.Password)) == 1
	return userOK && passOK
}
