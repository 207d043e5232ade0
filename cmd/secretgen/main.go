// Package main provides a CLI tool for generating the admin API secret and
// its bcrypt hash. The plaintext goes to the operator; the hash goes into
// ATTESTA_ADMIN_TOKEN_HASH.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"attesta/pkg/secrets"
)

type secretOutput struct {
	Secret string            `json:"secret"`
	Hash   string            `json:"hash"`
	Usage  map[string]string `json:"usage"`
}

func main() {
	jsonOutput := flag.Bool("json", false, "Output as JSON")
	hashOnly := flag.String("hash", "", "Hash an existing secret instead of generating a new one")
	flag.Parse()

	secret := *hashOnly
	if secret == "" {
		generated, err := secrets.Generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating secret: %v\n", err)
			os.Exit(1)
		}
		secret = generated
	}

	hash, err := secrets.Hash(secret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing secret: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(secretOutput{
			Secret: secret,
			Hash:   hash,
			Usage: map[string]string{
				"env":      "ATTESTA_ADMIN_TOKEN_HASH=<hash>",
				"exchange": `POST /admin/token {"actor":"<you>","secret":"<secret>"}`,
			},
		})
		return
	}

	fmt.Println("Admin API Secret")
	fmt.Println("================")
	fmt.Printf("Secret: %s\n", secret)
	fmt.Printf("Hash:   %s\n", hash)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  export ATTESTA_ADMIN_TOKEN_HASH='<hash>'")
	fmt.Println(`  curl -X POST http://localhost:8080/admin/token -d '{"actor":"ops","secret":"<secret>"}'`)
}
