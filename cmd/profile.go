// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shinichismile/pointmoney01/internal/auth"
	apperrors "github.com/shinichismile/pointmoney01/internal/errors"
	"github.com/shinichismile/pointmoney01/internal/forms"
	"github.com/shinichismile/pointmoney01/internal/users"
)

var (
	profileName   string
	profileEmail  string
	profilePoints int
	profileAvatar string
)

// profileCmd groups profile operations on the signed-in account.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update the signed-in profile",
}

// profileSetCmd applies a partial profile update. Only flags that were
// actually passed are merged; everything else keeps its current value.
// Without a signed-in user the update is a no-op.
var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update fields on the signed-in profile",
	Long: `The profile set command merges the given fields into the signed-in profile
and persists the result. Fields you do not pass are left untouched.

Example:
  pointmoney profile set --name "田中 太郎" --points 2000`,

	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := auth.Open()
		if err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not open auth state storage", err)
		}
		if !store.IsAuthenticated() {
			pterm.Info.Println("Not signed in; nothing to update.")
			return nil
		}

		var update users.ProfileUpdate
		flags := cmd.Flags()
		changed := false
		if flags.Changed("name") {
			update.Name = &profileName
			changed = true
		}
		if flags.Changed("email") {
			if err := forms.ValidateEmail(profileEmail); err != nil {
				return apperrors.New(apperrors.ValidationFailed, "email: "+err.Error())
			}
			update.Email = &profileEmail
			changed = true
		}
		if flags.Changed("points") {
			update.Points = &profilePoints
			changed = true
		}
		if flags.Changed("avatar") {
			if err := forms.ValidateURL(profileAvatar); err != nil {
				return apperrors.New(apperrors.ValidationFailed, "avatar: "+err.Error())
			}
			update.AvatarURL = &profileAvatar
			changed = true
		}
		if !changed {
			return apperrors.New(apperrors.ValidationFailed,
				"nothing to update: pass at least one of --name, --email, --points, --avatar")
		}

		if err := store.UpdateProfile(update); err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not persist auth state", err)
		}
		pterm.Success.Println("Profile updated")
		printProfile(store.State())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	profileSetCmd.Flags().IntVar(&profilePoints, "points", 0, "point balance")
	profileSetCmd.Flags().StringVar(&profileAvatar, "avatar", "", "avatar URL")
}
