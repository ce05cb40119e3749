// Package cmd implements the command-line interface for calsum.
//
// The root command delegates to subcommands: send (the default) runs the
// full summary pipeline, auth performs the one-time Google OAuth flow.
package cmd
