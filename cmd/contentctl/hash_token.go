package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token [token]",
	Short: "Print the bcrypt hash of an admin token for ADMIN_TOKEN_HASH",
	Long: `Hashes the given admin bearer token. When no token is given a random one is
generated and printed alongside its hash.`,
	Args: cobra.MaximumNArgs(1),
	// no configuration needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runHashToken,
}

func runHashToken(cmd *cobra.Command, args []string) error {
	token := ""
	if len(args) == 1 {
		token = args[0]
	}

	token, hash, err := hashToken(token, bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Token: %s\n", token)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ADMIN_TOKEN_HASH=%s\n", hash)
	return nil
}

// hashToken hashes token, generating one when empty
func hashToken(token string, cost int) (string, string, error) {
	if token == "" {
		token = uuid.NewString() + uuid.NewString()
	}
	if len(token) > 72 {
		return "", "", fmt.Errorf("token is longer than 72 bytes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash token: %w", err)
	}
	return token, string(hash), nil
}
