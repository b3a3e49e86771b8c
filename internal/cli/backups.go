package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "Manage configuration backups",
	}
	cmd.AddCommand(newBackupsListCmd(), newBackupsRestoreCmd(), newBackupsPruneCmd())
	return cmd
}

func newBackupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored backups, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}

			backups, err := app.Backups.Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				fmt.Println("No backups stored.")
				return nil
			}

			for _, b := range backups {
				fmt.Printf("%s  theme=%s  files=%d  %s\n",
					b.ID, b.ThemeName, len(b.Files), b.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newBackupsRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-id>",
		Short: "Restore configuration files from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}

			if err := app.Restore.Execute(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Backup %s restored.\n", args[0])
			return nil
		},
	}
}

func newBackupsPruneCmd() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the most recent backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}

			if keep == 0 {
				keep = app.Config.BackupRetention
			}
			if err := app.Prune.Execute(cmd.Context(), keep); err != nil {
				return err
			}
			fmt.Printf("Pruned backups, keeping the %d most recent.\n", keep)
			return nil
		},
	}

	cmd.Flags().IntVarP(&keep, "keep", "k", 0, "number of backups to keep (default from config)")
	return cmd
}
