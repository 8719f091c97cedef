package docload

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// findByExtension recursively collects every file under rootPath whose name
// ends in one of the given extensions.
func findByExtension(rootPath string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
