package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for themectl.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	root := &cobra.Command{
		Use:   "themectl",
		Short: "Apply one visual theme across GTK, Qt, Flatpak, and Snap",
		Long: `themectl reads an installed theme's colors, translates them into each
toolkit's native vocabulary, and applies them atomically: the previous
configuration is backed up first and restored automatically when the apply
fails on most targets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newThemesCmd(),
		newApplyCmd(),
		newCurrentCmd(),
		newBackupsCmd(),
		newVersionCmd(version, commit, buildDate),
	)
	return root
}

func newVersionCmd(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("themectl %s (commit %s, built %s)\n", version, commit, buildDate)
		},
	}
}
