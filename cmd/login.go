package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/skillpath/internal/identity"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <user-id>",
	Short: "Store the user id used for roadmap and quiz calls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.IdentityRepo().SetUserID(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", args[0])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.IdentityRepo().ClearUserID(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the stored user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID, err := st.IdentityRepo().UserID(cmd.Context())
		if errors.Is(err, identity.ErrNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(userID)
		return nil
	},
}
