// Package authutil hashes and checks local account passwords.
package authutil

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt ignores anything past 72 bytes

	bcryptCost = 12
)

var (
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d characters", MaxPasswordLength)
	ErrPasswordCommon   = errors.New("password is too common")
)

var common = map[string]struct{}{
	"password":   {},
	"12345678":   {},
	"123456789":  {},
	"qwertyuiop": {},
	"iloveyou":   {},
	"letmein1":   {},
	"football":   {},
	"welcome1":   {},
	"password1":  {},
	"changeme":   {},
}

// ValidatePassword enforces length bounds and rejects well-known passwords.
func ValidatePassword(pw string) error {
	if len(pw) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(pw) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if _, ok := common[strings.ToLower(pw)]; ok {
		return ErrPasswordCommon
	}
	return nil
}

// PasswordRules describes the password policy for form help text.
func PasswordRules() string {
	return fmt.Sprintf("Use %d to %d characters. Avoid common passwords.", MinPasswordLength, MaxPasswordLength)
}

// HashPassword returns a bcrypt hash of pw.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether pw matches hash. A malformed hash never matches.
func CheckPassword(pw, hash string) bool {
	if pw == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
