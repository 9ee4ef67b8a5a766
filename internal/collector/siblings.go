package collector

import (
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

// versionedFileName matches the Redfish sharding convention
// "{Base}.v{M}_{m}_{p}.{ext}".
var versionedFileName = regexp.MustCompile(`^(.+)\.v\d+_\d+_\d+\.(yaml|yml|json)$`)

// expandSiblings checks whether targetFile is a versioned fragment and, if
// so, loads its un-versioned sibling "{Base}.{ext}" (when present and not
// already scanned) and folds every schema it defines into the closure. A
// missing sibling is not an error: the versioned file is legal on its own,
// and most Redfish schemas have no such companion.
func (c *Collector) expandSiblings(domain, targetFile string) error {
	base := filepath.Base(targetFile)
	m := versionedFileName.FindStringSubmatch(base)
	if m == nil {
		return nil
	}
	siblingName := m[1] + "." + m[2]
	siblingPath := filepath.Join(filepath.Dir(targetFile), siblingName)
	if siblingPath == targetFile {
		return nil
	}
	if _, alreadyScanned := c.scannedFiles[siblingPath]; alreadyScanned {
		return nil
	}

	exists, err := afero.Exists(c.fs, siblingPath)
	if err != nil || !exists {
		return nil
	}

	doc, err := c.loadPartial(siblingPath)
	if err != nil {
		return err
	}
	if doc.Components == nil {
		return nil
	}

	for _, name := range sortedPropertyKeys(doc.Components.Schemas) {
		schema := doc.Components.Schemas[name]
		item, isNew := c.register(domain, siblingPath, name, schema, false)
		if !isNew {
			continue
		}
		loc := location{domain: domain, file: siblingPath}
		if err := c.descendChildren(loc, item.SchemaName, schema); err != nil {
			return err
		}
	}
	return nil
}
