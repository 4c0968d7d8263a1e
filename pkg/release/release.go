// Package release derives download locations for upstream release artifacts.
package release

import "fmt"

// Repo is the GitHub repository the formula tracks.
const Repo = "VimCommando/kibana-object-manager"

// tarballURLTemplate expands to the source tarball for a release tag.
const tarballURLTemplate = "https://github.com/%s/archive/refs/tags/v%s.tar.gz"

// TarballURL returns the source tarball URL for the given release version.
// The version is used verbatim; tags are expected to carry a "v" prefix.
func TarballURL(version string) string {
	return fmt.Sprintf(tarballURLTemplate, Repo, version)
}
