package logging

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

// runFilePattern matches per-run log files and their rotated backups. The
// first group is the run stamp shared by a run file and its backups.
var runFilePattern = regexp.MustCompile(`^(\d{8}_\d{6})(?:-.+)?\.txt$`)

// Prune keeps the newest keep runs in dir and removes the files of older
// runs, rotated backups included. Stamps sort chronologically.
func Prune(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	runs := make(map[string][]string)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if m := runFilePattern.FindStringSubmatch(entry.Name()); m != nil {
			runs[m[1]] = append(runs[m[1]], entry.Name())
		}
	}
	if len(runs) <= keep {
		return nil
	}

	stamps := make([]string, 0, len(runs))
	for stamp := range runs {
		stamps = append(stamps, stamp)
	}
	slices.Sort(stamps)

	var errs []error
	for _, stamp := range stamps[:len(stamps)-keep] {
		for _, name := range runs[stamp] {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
