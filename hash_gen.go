package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := []byte("admin") // 你要设置的密码
	hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("Username: admin\n")
	fmt.Printf("Hashed Password: %s\n", string(hashedPassword))
}

// db.users.insertOne({username: "admin", password: "$2a$10$/lpVGyBdxr9Px8aifH7K/.ozClF0Di54vuV0.tDllRQouMk.jj.dG",
//   email: "admin@itkjc.com", phone: "0909090909", type: "user", status: "active",
//   createdAt: new Date().toISOString(), updatedAt: new Date().toISOString(), deletedAt: null})
