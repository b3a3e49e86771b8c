package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolut/themectl/internal/application/usecase"
	"github.com/avolut/themectl/internal/domain/entity"
)

func newApplyCmd() *cobra.Command {
	var targets []string

	cmd := &cobra.Command{
		Use:   "apply <theme>",
		Short: "Apply a theme across the enabled toolkits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}

			input := usecase.ApplyInput{ThemeName: args[0]}
			if len(targets) == 0 {
				configured, err := app.Config.Targets()
				if err != nil {
					return err
				}
				input.Targets = configured
			}
			for _, name := range targets {
				id := entity.ToolkitID(name)
				if !id.Valid() {
					return fmt.Errorf("unknown target %q", name)
				}
				input.Targets = append(input.Targets, id)
			}

			result, err := app.Apply.Execute(cmd.Context(), input)
			if err != nil {
				if errors.Is(err, usecase.ErrRollbackFailed) {
					fmt.Printf("Rollback FAILED. The configuration may be inconsistent.\n")
					fmt.Printf("Restore backup %s manually with: themectl backups restore %s\n",
						result.BackupID, result.BackupID)
				}
				return err
			}

			printResult(result)
			if !result.Success {
				return fmt.Errorf("theme %q was not applied", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&targets, "targets", "t", nil,
		"restrict to specific toolkits (gtk, qt, flatpak, snap)")
	return cmd
}

func printResult(result *entity.ApplicationResult) {
	for _, hr := range result.Results {
		status := "ok"
		if !hr.Success {
			status = "FAILED"
		}
		fmt.Printf("  %-10s %-7s %s\n", hr.Toolkit, status, hr.Message)
	}
	for _, tk := range result.Skipped {
		fmt.Printf("  %-10s %-7s toolkit not available\n", tk, "skipped")
	}

	switch {
	case result.Success && result.Failed() == 0:
		fmt.Printf("Theme %q applied.\n", result.ThemeName)
	case result.Success:
		fmt.Printf("Theme %q applied with %d failure(s); see breakdown above.\n",
			result.ThemeName, result.Failed())
	case result.RollbackTriggered:
		fmt.Printf("Apply failed on most targets; rolled back to previous theme (backup %s).\n",
			result.BackupID)
	}
}
