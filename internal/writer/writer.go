// Package writer implements the Writer: for every planned
// output file, create (truncate), write the emission payload, make sure it
// ends with a newline, and close. Covers a whole output tree of Go source
// files plus per-domain and root index files.
package writer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bmcpi/redfish-modelgen/internal/generator"
	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
)

// Write renders every file in tree and writes it under root: one directory
// per non-empty domain, one file per module, a doc.go index in each domain
// directory, and a root doc.go index.
func Write(fs afero.Fs, root string, tree *generator.OutputTree) error {
	for _, file := range tree.Files {
		path := filepath.Join(root, file.RelPath)
		if err := writeFile(fs, path, generator.Render(file)); err != nil {
			return err
		}
	}

	for _, idx := range tree.DomainIndexes {
		if idx.Domain == "" {
			continue
		}
		path := filepath.Join(root, idx.Domain, "doc.go")
		if err := writeFile(fs, path, generator.RenderDomainIndex(idx)); err != nil {
			return err
		}
	}

	return writeFile(fs, filepath.Join(root, "doc.go"), generator.RenderRootIndex(tree))
}

// writeFile creates (truncating) path, writes content, appends a newline
// only when content does not already end with one, and closes the handle on
// every exit path.
func writeFile(fs afero.Fs, path, content string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating directory for %s: %v", modelerr.ErrIO, path, err)
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", modelerr.ErrIO, path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("%w: writing %s: %v", modelerr.ErrIO, path, err)
	}
	if content == "" || content[len(content)-1] != '\n' {
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("%w: writing %s: %v", modelerr.ErrIO, path, err)
		}
	}
	return nil
}
