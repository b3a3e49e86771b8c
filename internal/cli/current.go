package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the active theme per toolkit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}

			snapshot, err := app.Current.Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(snapshot.Themes) == 0 {
				fmt.Println("No toolkit reported an active theme.")
				return nil
			}

			for toolkit, name := range snapshot.Themes {
				fmt.Printf("%-10s %s\n", toolkit, name)
			}
			return nil
		},
	}
}
