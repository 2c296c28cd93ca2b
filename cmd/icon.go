// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/base64"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shinichismile/pointmoney01/internal/auth"
	apperrors "github.com/shinichismile/pointmoney01/internal/errors"
	"github.com/shinichismile/pointmoney01/internal/forms"
)

// iconCmd groups operations on the custom workspace icon. The icon is a
// UI customization stored on the auth state itself, so it survives profile
// edits and does not require a signed-in user.
var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Manage the custom workspace icon",
}

// iconSetCmd stores a custom icon. The argument is either a path to an
// image file (encoded before storing) or an already base64-encoded literal.
var iconSetCmd = &cobra.Command{
	Use:   "set <file|base64>",
	Short: "Set the custom workspace icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := auth.Open()
		if err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not open auth state storage", err)
		}

		encoded := args[0]
		if data, err := os.ReadFile(args[0]); err == nil {
			encoded = base64.StdEncoding.EncodeToString(data)
		}
		if err := store.UpdateIcon(encoded); err != nil {
			return apperrors.Wrap(apperrors.ValidationFailed, "could not set icon", err)
		}
		pterm.Success.Println("Custom icon saved")
		return nil
	},
}

// iconClearCmd removes the custom icon, restoring the default.
var iconClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the custom workspace icon",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := auth.Open()
		if err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not open auth state storage", err)
		}
		if err := store.UpdateIcon(""); err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not clear icon", err)
		}
		pterm.Success.Println("Custom icon removed")
		return nil
	},
}

// avatarCmd groups operations on the signed-in profile's avatar.
var avatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Manage the profile avatar",
}

// avatarSetCmd points the signed-in profile at an avatar image URL.
var avatarSetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Set the avatar URL on the signed-in profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := forms.ValidateURL(args[0]); err != nil {
			return apperrors.New(apperrors.ValidationFailed, "avatar: "+err.Error())
		}
		store, err := auth.Open()
		if err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not open auth state storage", err)
		}
		if !store.IsAuthenticated() {
			pterm.Info.Println("Not signed in; nothing to update.")
			return nil
		}
		if err := store.UpdateAvatar(args[0]); err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not persist auth state", err)
		}
		pterm.Success.Println("Avatar updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iconCmd)
	iconCmd.AddCommand(iconSetCmd)
	iconCmd.AddCommand(iconClearCmd)
	rootCmd.AddCommand(avatarCmd)
	avatarCmd.AddCommand(avatarSetCmd)
}
