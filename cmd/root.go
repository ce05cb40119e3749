package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the calsum application
var rootCmd = &cobra.Command{
	Use:   "calsum",
	Short: "Sends an AI-generated summary of your calendar via WhatsApp",
	Long: `calsum fetches your upcoming Google Calendar events, asks Claude for a
conversational summary of the week ahead (plus a monthly look-ahead of
items beyond it), and delivers the result as a WhatsApp message through
Twilio.

Run the 'auth' command once to authorize calendar access, then schedule
'send' to run weekly.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calsum version %s\n" .Version}}`)

	// If no subcommand is provided, run the send command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "send")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newAuthCmd())
}
