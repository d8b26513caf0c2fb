package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/linesmerrill/vehicle-registry-api/registry"
)

// Quick utility to generate a bcrypt hash for a password, or to check a
// password against an existing hash
// Usage: go run scripts/hash_password.go <password> [cost]
//        go run scripts/hash_password.go -check <hash> <password>
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/hash_password.go <password> [cost]")
		fmt.Println("       go run scripts/hash_password.go -check <hash> <password>")
		os.Exit(1)
	}

	if os.Args[1] == "-check" {
		if len(os.Args) != 4 {
			fmt.Println("Usage: go run scripts/hash_password.go -check <hash> <password>")
			os.Exit(1)
		}
		if err := (registry.BcryptHasher{}).Compare(os.Args[2], os.Args[3]); err != nil {
			fmt.Printf("No match: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match")
		return
	}

	hasher := registry.BcryptHasher{}
	if len(os.Args) > 2 {
		cost, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid cost %q: %v\n", os.Args[2], err)
			os.Exit(1)
		}
		hasher.Cost = cost
	}

	hash, err := hasher.Hash(os.Args[1])
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Bcrypt Hash: %s\n", hash)
}
