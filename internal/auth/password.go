package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt work factor for stored credentials.
const hashCost = 12

// HashPassword returns the bcrypt hash of a plaintext password. Each call
// uses a fresh salt, so hashing the same plaintext twice yields different
// strings.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// A mismatch is a normal false result, not an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
