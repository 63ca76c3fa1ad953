// Command hash-generator is a development utility that produces bcrypt
// digests for the passwords given as arguments, plus a fresh remember
// token with its digest. Useful for seeding test fixtures.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tobin/ripple-api/internal/service/auth"
)

func main() {
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	passwords := os.Args[1:]
	if len(passwords) == 0 {
		passwords = []string{"testpassword123"}
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Printf("Error generating hash for %s: %v\n", password, err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}

	token, err := auth.NewRememberToken()
	if err != nil {
		fmt.Printf("Error generating remember token: %v\n", err)
		os.Exit(1)
	}
	digest, err := hasher.Hash(token)
	if err != nil {
		fmt.Printf("Error hashing remember token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Remember token: %s\nDigest: %s\n", token, digest)
}
