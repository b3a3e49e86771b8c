package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List installed themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}

			themes, err := app.Discover.Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(themes) == 0 {
				fmt.Println("No themes found.")
				return nil
			}

			for _, t := range themes {
				toolkits := make([]string, 0, len(t.SupportedToolkits))
				for _, tk := range t.SupportedToolkits {
					toolkits = append(toolkits, tk.String())
				}
				fmt.Printf("%-30s %s\n", t.Name, strings.Join(toolkits, ", "))
			}
			return nil
		},
	}
}
