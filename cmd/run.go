package cmd

import (
	"fmt"

	"github.com/abhisek/skillpath/internal/api"
	"github.com/abhisek/skillpath/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI with the store-backed
// identity provider.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := api.NewClient(api.ConfigFromEnv())

	return app.Run(app.Options{
		Client:   client,
		Identity: st.IdentityRepo(),
	})
}
