package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt 哈希的 modular-crypt 前缀。历史数据由 Python bcrypt 写入（$2b$），
// Go 侧生成的是 $2a$，两者算法一致，判断时需同时识别。
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// IsHashedPassword 判断取值是否已经是 bcrypt 哈希，避免二次哈希
func IsHashedPassword(value string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// HashPassword 对明文密码做加盐单向哈希
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
