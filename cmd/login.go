// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinichismile/pointmoney01/internal/auth"
	apperrors "github.com/shinichismile/pointmoney01/internal/errors"
	"github.com/shinichismile/pointmoney01/internal/forms"
	"github.com/shinichismile/pointmoney01/internal/users"
)

var (
	loginIdentifier string
	loginPassword   string
	loginShowDemo   bool
)

// loginCmd represents the login view. It collects the login form, validates
// it, checks the credentials against the demo roster and persists the
// resulting auth state locally.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in with a demo account",
	Long: `The login command renders the pointmoney login form. You can sign in with
either the login ID or the email address of one of the demo accounts; run
with --demo to list them.

On success the signed-in user is stored locally (OS keychain when available,
XDG state dir otherwise), so later commands see the session immediately.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if loginShowDemo {
			printDemoAccounts()
			return nil
		}

		store, err := auth.Open()
		if err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not open auth state storage", err)
		}
		if st := store.State(); st.Authenticated && st.User != nil {
			fmt.Printf("Already logged in as %s\n", st.User.Name)
			return nil
		}

		form := forms.LoginForm{Identifier: loginIdentifier, Password: loginPassword}
		if form.Identifier == "" {
			if form.Identifier, err = promptText("Login ID or email: "); err != nil {
				return err
			}
		}
		if form.Password == "" {
			if form.Password, err = promptPassword("Password: "); err != nil {
				return err
			}
		}

		if err := forms.Validate(form); err != nil {
			printFieldErrors(err)
			return apperrors.Wrap(apperrors.ValidationFailed, "login form is invalid", err)
		}

		user, err := users.Authenticate(form.Identifier, form.Password)
		if err != nil {
			// Generic message only; never hint at which half was wrong.
			return apperrors.New(apperrors.AuthFailed, "login ID or password is incorrect")
		}

		if err := store.Login(user); err != nil {
			return apperrors.Wrap(apperrors.StorageFailed, "could not persist auth state", err)
		}

		fmt.Println(getRandomLoginGreeting(user.Name))
		printProfile(store.State())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginIdentifier, "identifier", "i", "", "login ID or email (prompted when omitted)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted; prompting keeps it out of shell history)")
	loginCmd.Flags().BoolVar(&loginShowDemo, "demo", false, "list the demo accounts and exit")
}
