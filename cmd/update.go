package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/VimCommando/brewbump/pkg/updater"
)

var (
	// Flags for update command
	updateVersion string
	updateFormula string
	updateOutput  string
	updateDryRun  bool
)

// UpdateCommand represents the update command
var UpdateCommand = &cobra.Command{
	Use:   "update",
	Short: "Update the formula's url and sha256 for a release version",
	Long: `Downloads the release source tarball for the given version, computes its
SHA-256 digest, and rewrites the formula's url and sha256 lines. The formula
file is only written after both lines have been found; on any failure it is
left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Infof("Updating formula for version %s", updateVersion)

		u := &updater.Updater{
			Output: updateOutput,
			DryRun: updateDryRun,
		}
		result, err := u.Run(cmd.Context(), updateVersion, updateFormula)
		if err != nil {
			log.WithError(err).Error("Failed to update formula")
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated formula: %s\n", result.FormulaPath)
		fmt.Fprintf(cmd.OutOrStdout(), "url: %s\n", result.URL)
		fmt.Fprintf(cmd.OutOrStdout(), "sha256: %s\n", result.SHA256)
		return nil
	},
}

func init() {
	UpdateCommand.Flags().StringVar(&updateVersion, "version", "", "Release version, e.g. 0.2.0")
	UpdateCommand.Flags().StringVar(&updateFormula, "formula", "", "Path to the Homebrew formula file")
	UpdateCommand.Flags().StringVarP(&updateOutput, "output", "o", "", "Output path (default: overwrite the formula file)")
	UpdateCommand.Flags().BoolVar(&updateDryRun, "dry-run", false, "Compute and print values without writing the formula")
	UpdateCommand.MarkFlagRequired("version")
	UpdateCommand.MarkFlagRequired("formula")
}
