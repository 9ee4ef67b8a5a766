// Package walker implements the Walker stage: a deterministic
// recursive scan for files literally named "openapi.yaml", dispatching each
// path/method/operation triple to a Visitor.
package walker

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// targetFileName is the exact file name the Walker looks for.
const targetFileName = "openapi.yaml"

// OperationVisitor receives one (root, file, pathTemplate, method,
// operation) tuple per call.
type OperationVisitor func(root, file, pathTemplate, method string, op *openapi.Operation) error

// Walk visits every descendant of root named exactly "openapi.yaml", in
// deterministic (sorted) directory order, then iterates each file's paths
// in sorted path-template order and each path's methods in the fixed
// HTTPMethods order, calling visit for every present operation.
func Walk(fs afero.Fs, root string, visit OperationVisitor) error {
	files, err := findOpenAPIFiles(fs, root)
	if err != nil {
		return err
	}

	for _, file := range files {
		doc, err := openapi.Load(fs, file)
		if err != nil {
			return err
		}

		paths := make([]string, 0, len(doc.Paths))
		for p := range doc.Paths {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		for _, pathTemplate := range paths {
			item := doc.Paths[pathTemplate]
			for _, method := range openapi.HTTPMethods {
				op := item.ByMethod(method)
				if op == nil {
					continue
				}
				if err := visit(root, file, pathTemplate, method, op); err != nil {
					return fmt.Errorf("walking %s %s %s: %w", file, method, pathTemplate, err)
				}
			}
		}
	}

	return nil
}

// findOpenAPIFiles recursively collects every "openapi.yaml" path under
// root, sorting directory entries by name at each level so the overall walk
// order -- and therefore all downstream output -- is byte-stable across
// runs on the same input.
func findOpenAPIFiles(fs afero.Fs, root string) ([]string, error) {
	var found []string
	var walkDir func(dir string) error
	walkDir = func(dir string) error {
		entries, err := afero.ReadDir(fs, dir)
		if err != nil {
			return fmt.Errorf("%w: reading dir %s: %v", modelerr.ErrIO, dir, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		for _, e := range entries {
			p := filepath.Join(dir, e.Name())
			if e.IsDir() {
				if err := walkDir(p); err != nil {
					return err
				}
				continue
			}
			if e.Name() == targetFileName {
				found = append(found, p)
			}
		}
		return nil
	}
	if err := walkDir(root); err != nil {
		return nil, err
	}
	return found, nil
}
