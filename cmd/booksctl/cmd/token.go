package cmd

import (
	"fmt"
	"time"

	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

// tokenCmd represents the token command.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development JWT for the API",
	Long: `Signs a token with JWT_SECRET and JWT_ISSUER for use when AUTH_ENABLED=true.
Only meant for local development; production tokens come from the identity provider.

Example:
  booksctl token --user alice --ttl 24h`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "user ID to put in the subject claim (required)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default JWT_EXPIRY_DURATION)")
	_ = tokenCmd.MarkFlagRequired("user")
}

func runToken(cmd *cobra.Command, args []string) error {
	if tokenUser == "" {
		return fmt.Errorf("--user must not be empty")
	}
	ttl := tokenTTL
	if ttl <= 0 {
		ttl = cfg.JWTExpiryDuration
	}
	token, err := utils.GenerateJWT(tokenUser, cfg.JWTSecret, ttl, cfg.JWTIssuer)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
