// pkg/utils/password.go
package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword เข้ารหัสรหัสผ่านด้วย bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword ตรวจสอบรหัสผ่านกับ hash ที่เก็บไว้
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
