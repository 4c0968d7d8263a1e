// Package updater orchestrates a formula update for a release version.
package updater

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/VimCommando/brewbump/pkg/checksum"
	"github.com/VimCommando/brewbump/pkg/formula"
	"github.com/VimCommando/brewbump/pkg/release"
)

// FileNotFoundError indicates the formula path does not reference an existing file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("formula file not found: %s", e.Path)
}

// Result holds the values reported after a successful update.
type Result struct {
	FormulaPath string
	URL         string
	SHA256      string
}

// Updater rewrites a formula's url and sha256 fields for a release version.
type Updater struct {
	// Client performs the tarball download. Defaults to http.DefaultClient.
	Client *http.Client
	// Output redirects the patched document. Empty means overwrite the input.
	Output string
	// DryRun skips the write while still computing and reporting the values.
	DryRun bool
}

// Run downloads the release tarball for version, computes its SHA-256 digest,
// and patches the url and sha256 lines of the formula at formulaPath.
//
// The formula path is checked before any network activity, and the file is
// written only after both fields have been located, so a failing run never
// leaves a partially updated document.
func (u *Updater) Run(ctx context.Context, version, formulaPath string) (*Result, error) {
	if _, err := os.Stat(formulaPath); err != nil {
		return nil, &FileNotFoundError{Path: formulaPath}
	}

	url := release.TarballURL(version)

	log.Infof("Downloading %s", url)
	digest, err := checksum.SHA256URL(ctx, u.Client, url)
	if err != nil {
		return nil, err
	}
	log.Debugf("Computed sha256: %s", digest)

	content, err := os.ReadFile(formulaPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read formula file %s", formulaPath)
	}

	patched, err := formula.Patch(string(content), url, digest)
	if err != nil {
		return nil, err
	}

	outputPath := u.Output
	if outputPath == "" {
		outputPath = formulaPath
	}

	if u.DryRun {
		log.Infof("Dry run, not writing %s", outputPath)
	} else {
		log.Debugf("Writing updated formula to %s", outputPath)
		if err := os.WriteFile(outputPath, []byte(patched), 0644); err != nil {
			return nil, errors.Wrapf(err, "failed to write formula file %s", outputPath)
		}
	}

	return &Result{
		FormulaPath: outputPath,
		URL:         url,
		SHA256:      digest,
	}, nil
}
