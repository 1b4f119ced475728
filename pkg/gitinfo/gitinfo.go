// Package gitinfo derives fallback project coordinates from the git
// checkout the analysis runs in, for steps that do not configure a
// version or branch explicitly.
package gitinfo

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

const shortShaLen = 12

// Version returns a project version derived from the repository
// containing path: the shortened sha of HEAD. The second return is
// false when path is not inside a git repository or HEAD cannot be
// resolved, callers then simply leave the version unset.
func Version(path string) (string, bool) {
	head, ok := resolveHead(path)
	if !ok {
		return "", false
	}
	return head.Hash().String()[:shortShaLen], true
}

// Branch returns the name of the branch currently checked out at path.
// Detached heads and non-repositories report false.
func Branch(path string) (string, bool) {
	head, ok := resolveHead(path)
	if !ok || !head.Name().IsBranch() {
		return "", false
	}
	return head.Name().Short(), true
}

func resolveHead(path string) (head *plumbing.Reference, ok bool) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		logrus.Debugf("No git repository at %s: %v", path, err)
		return nil, false
	}
	ref, err := repo.Head()
	if err != nil {
		logrus.Debugf("Unable to resolve HEAD at %s: %v", path, err)
		return nil, false
	}
	return ref, true
}
