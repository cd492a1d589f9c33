package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for admin password hashes
const BcryptCost = 12

// HashPassword hashes a password for the auth.password_hash setting
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a bcrypt hash with a plaintext password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
