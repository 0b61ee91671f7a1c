package rotate

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
)

type archive struct {
	path    string
	created time.Time
}

// Archives lists the archives sitting next to file that share its
// extension, oldest first
func Archives(fs afero.Fs, file string) ([]string, error) {
	found, err := archives(fs, file)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(found))
	for i, a := range found {
		paths[i] = a.path
	}
	return paths, nil
}

func archives(fs afero.Fs, file string) ([]archive, error) {
	dir := filepath.Dir(file)
	ext := filepath.Ext(file)

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var found []archive
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		created, archivedExt, ok := parseArchiveName(e.Name())
		if !ok || archivedExt != ext {
			continue
		}
		found = append(found, archive{path: filepath.Join(dir, e.Name()), created: created})
	}

	// Sort by creation date (oldest first)
	sort.Slice(found, func(i, j int) bool {
		return found[i].created.Before(found[j].created)
	})
	return found, nil
}

// PruneArchives removes the oldest archives of file so that at most keep
// remain. keep <= 0 keeps all of them.
func PruneArchives(fs afero.Fs, file string, keep int) error {
	if keep <= 0 {
		return nil
	}

	found, err := archives(fs, file)
	if err != nil {
		return err
	}
	if len(found) <= keep {
		return nil
	}

	for _, a := range found[:len(found)-keep] {
		if err := fs.Remove(a.path); err != nil {
			return err
		}
	}
	return nil
}
