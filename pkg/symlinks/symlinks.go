// Package symlinks finds the symbolic links in a directory that point at a
// given filesystem target, matching by canonicalized path.
package symlinks

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eddy-geek/lsinput/pkg/errors"
	"github.com/eddy-geek/lsinput/pkg/logging"
)

// Canonicalize resolves path to an absolute form with all symbolic links
// followed and redundant components removed. Symlinks are resolved before
// the path is made absolute, so ".." components are applied to resolved
// directories rather than collapsed lexically.
func Canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// canonicalizeFrom canonicalizes path, resolving it against base when it is
// relative. The two are combined by plain separator concatenation rather
// than filepath.Join: Join would clean ".." lexically, while realpath
// semantics require ".." to apply to the symlink-resolved base.
func canonicalizeFrom(base, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = base + string(filepath.Separator) + path
	}
	return Canonicalize(path)
}

// FindLinksTo scans dir non-recursively and returns the full paths of every
// symbolic-link entry whose canonicalized destination equals the
// canonicalized target. Relative link targets are resolved against dir, not
// against the process working directory, which is never changed.
//
// Entries that are not symlinks are skipped. An empty result is a valid
// success. Failure to canonicalize the target, open dir, or read or resolve
// any link entry aborts the whole call; no partial result is returned.
func FindLinksTo(target, dir string) ([]string, error) {
	logger := logging.GetLogger("symlinks")

	canonTarget, err := Canonicalize(target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTargetResolve, "cannot resolve target %s", target)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirAccess, "cannot open directory %s", dir)
	}

	var matches []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		// Lstat describes the entry itself, never its target.
		info, err := os.Lstat(full)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrEntryStat, "cannot stat %s", full)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			continue
		}

		raw, err := os.Readlink(full)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrLinkRead, "cannot read link %s", full)
		}

		dest, err := canonicalizeFrom(dir, raw)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrLinkResolve, "cannot resolve link %s", full).
				WithDetail("rawTarget", raw)
		}

		if dest == canonTarget {
			matches = append(matches, full)
		}
	}

	logger.Debug().
		Str("target", canonTarget).
		Str("dir", dir).
		Int("matches", len(matches)).
		Msg("Scanned directory for links")

	return matches, nil
}
