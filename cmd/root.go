// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the pointmoney client.
// It renders the login, registration and profile views of the points-tracking
// demo as Cobra subcommands, with authentication state persisted locally
// between invocations.
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shinichismile/pointmoney01/internal/logging"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the pointmoney client.
var rootCmd = &cobra.Command{
	Use:   "pointmoney",
	Short: "pointmoney client for the points-tracking demo",
	Long: `pointmoney is the terminal client for the pointmoney points-tracking demo.
It keeps your sign-in state on this machine (OS keychain or XDG state dir)
and exposes the login, registration and profile views as subcommands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("pointmoney %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Errors are masked before display so a
// failed command can never echo credentials back to the terminal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(logging.Mask(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show client version information")
}
