// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	apperrors "github.com/shinichismile/pointmoney01/internal/errors"
	"github.com/shinichismile/pointmoney01/internal/forms"
)

var (
	registerLoginID string
	registerEmail   string
	registerName    string
	registerRole    string
)

// registerCmd represents the registration view. The demo build validates
// the form exactly like the real client but never issues an account:
// credential issuance is out of scope, only the fixture accounts can sign in.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Fill in the registration form",
	Long: `The register command renders the pointmoney registration form and validates
every field the way the production client does (login ID, email, display
name, role, password with confirmation).

This demo build does not issue accounts; after a successful validation it
points you at the built-in demo accounts instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.RegisterForm{
			LoginID: registerLoginID,
			Email:   registerEmail,
			Name:    registerName,
			Role:    registerRole,
		}

		var err error
		if form.LoginID == "" {
			if form.LoginID, err = promptText("Login ID (3-20 letters/digits): "); err != nil {
				return err
			}
		}
		if form.Email == "" {
			if form.Email, err = promptText("Email: "); err != nil {
				return err
			}
		}
		if form.Name == "" {
			if form.Name, err = promptText("Display name: "); err != nil {
				return err
			}
		}
		if form.Password, err = promptPassword("Password (min 8 chars): "); err != nil {
			return err
		}
		if form.PasswordConfirm, err = promptPassword("Password (confirm): "); err != nil {
			return err
		}

		if err := forms.Validate(form); err != nil {
			printFieldErrors(err)
			return apperrors.Wrap(apperrors.ValidationFailed, "registration form is invalid", err)
		}

		pterm.Success.Println("All fields look good!")
		pterm.Info.Println("This demo build does not create accounts; sign in with a demo account instead.")
		printDemoAccounts()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerLoginID, "login-id", "", "desired login ID (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerRole, "role", "worker", "account role: worker or admin")
}
