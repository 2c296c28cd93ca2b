// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinichismile/pointmoney01/internal/auth"
	apperrors "github.com/shinichismile/pointmoney01/internal/errors"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the signed-in user, the authenticated flag and any custom icon
// from local storage. Logging out while already signed out is harmless.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear local session state",
	Long: `The logout command clears the locally persisted authentication state:
the signed-in user, the authenticated flag and the custom workspace icon.
Everything is local, so logout always applies immediately.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := auth.Open()
		if err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not open auth state storage", err)
		}
		wasLoggedIn := store.IsAuthenticated()
		if err := store.Logout(); err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not clear auth state", err)
		}
		if wasLoggedIn {
			fmt.Println("👋 Signed out. Local session state cleared.")
		} else {
			fmt.Println("✅ Local session state cleared (you were not signed in).")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
