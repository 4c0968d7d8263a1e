package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VimCommando/brewbump/pkg/formula"
	"github.com/VimCommando/brewbump/pkg/updater"
)

var (
	// Flags for check command
	checkFormula string
)

// CheckCommand represents the check command
var CheckCommand = &cobra.Command{
	Use:   "check",
	Short: "Show the formula's current url and sha256",
	Long: `Reads the formula and reports the current url and sha256 values. Fails if
either line is missing. Performs no network access and never writes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(checkFormula); err != nil {
			return &updater.FileNotFoundError{Path: checkFormula}
		}

		content, err := os.ReadFile(checkFormula)
		if err != nil {
			return errors.Wrapf(err, "failed to read formula file %s", checkFormula)
		}

		url, digest, err := formula.Fields(string(content))
		if err != nil {
			log.WithError(err).Error("Formula is missing a required field")
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "url: %s\n", url)
		fmt.Fprintf(cmd.OutOrStdout(), "sha256: %s\n", digest)
		return nil
	},
}

func init() {
	CheckCommand.Flags().StringVar(&checkFormula, "formula", "", "Path to the Homebrew formula file")
	CheckCommand.MarkFlagRequired("formula")
}
