package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Obtain an access token",
	Long: `Exchange the configured client credentials for a bearer token and
print it together with its validity. Useful for driving other tooling
against the racetime.gg API.`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	token, err := client.Authorize(ctx, cfg.Racetime.ClientID, cfg.Racetime.ClientSecret)
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}

	fmt.Println(token.AccessToken)
	fmt.Printf("valid for %s\n", token.ExpiresIn)

	return nil
}
