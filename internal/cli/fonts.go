package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rook-computer/iconbanner/internal/assets"
)

func newFontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List built-in fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range assets.Names() {
				marker := ""
				if name == assets.DefaultFont {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
			}
			return nil
		},
	}
}
