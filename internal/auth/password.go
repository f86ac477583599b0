package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash; the salt is random per call,
// so hashing the same plaintext twice yields different strings.
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
