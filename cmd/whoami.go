package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinichismile/pointmoney01/internal/auth"
)

// whoamiCmd represents the whoami command for displaying the signed-in user.
// Everything is read from the locally persisted auth state; there is no
// backend to validate against.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the signed-in account",
	Long: `The whoami command displays the account recorded in the local auth state:
display name, login ID, email, role, point balance and last login time.

If no session exists it points you at the login command instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := auth.Open()
		if err != nil {
			// Unreadable state is treated as signed out.
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'pointmoney login' to get started.")
			return nil
		}
		st := store.State()
		if !st.Authenticated || st.User == nil {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'pointmoney login' to get started.")
			return nil
		}

		fmt.Printf("👤 Current user: %s (%s)\n", st.User.Name, st.User.LoginID)
		printProfile(st)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
