package cleaner

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindSubjectFolders lists the immediate subdirectories of root/category.
// Symbolic links that resolve to directories are included.
// The order of the returned paths is not guaranteed.
func FindSubjectFolders(root, category string) ([]string, error) {
	dir := filepath.Join(root, category)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list the %q folder: %w", dir, err)
	}

	folders := make([]string, 0, len(entries))

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
		} else if !entry.IsDir() {
			continue
		}

		folders = append(folders, path)
	}

	return folders, nil
}
