package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"calsum/internal/config"
	"calsum/internal/google"
	"calsum/internal/logging"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize read-only access to your Google Calendar",
		Long: `Start the Google OAuth flow for read-only calendar access. Open the
printed URL in a browser, approve access, and paste the authorization
code back. The resulting token is cached on disk and refreshed
automatically on later runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := logging.Setup(cfg.Verbose)

			if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
				return fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
			}

			conf := google.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret)

			fmt.Printf("Go to the following link in your browser then type the "+
				"authorization code:\n%v\n", google.AuthURL(conf))
			fmt.Print("Enter authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			authCode, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			authCode = strings.TrimSpace(authCode)
			if authCode == "" {
				return fmt.Errorf("authorization code cannot be empty")
			}

			token, err := google.Exchange(cmd.Context(), conf, authCode)
			if err != nil {
				return err
			}

			if err := google.SaveToken(cfg.GoogleTokenPath, token); err != nil {
				return err
			}

			logger.Info("Google Calendar authorized, token saved",
				logging.Operation("auth"),
				"path", cfg.GoogleTokenPath)
			return nil
		},
	}
}
