package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades hashing speed for brute-force resistance. 12 keeps a
// login under ~300ms on current hardware.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
