package services

import (
	"futnion_server/apperrors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService owns password hashing. No token, storage, or auth logic
// lives here.
type PasswordService struct{}

func NewPasswordService() *PasswordService {
	return &PasswordService{}
}

// HashPassword hashes a plaintext password with bcrypt.
func (ps *PasswordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInternal, "failed to hash password", err)
	}
	return string(hash), nil
}

// ComparePasswords reports whether the plaintext matches the stored hash.
func (ps *PasswordService) ComparePasswords(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
