package collector

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// resolveRef resolves the $ref carried by refNode, encountered at loc, and
// returns the (possibly pre-existing) SchemaItem it names. A
// ref already present in the closure is returned without re-reading or
// re-traversing its file, which is what terminates both self-cycles and
// mutual cycles. The resolution is additionally recorded against refNode's
// identity in c.refTargets so the Generator can later look up what a given
// $ref-bearing schema node resolved to without re-deriving its path
// (Go-specific addition; see DESIGN.md).
func (c *Collector) resolveRef(loc location, refNode *openapi.Schema) (*model.SchemaItem, error) {
	ref := refNode.Ref
	hashIdx := strings.Index(ref, "#")
	if hashIdx < 0 {
		return nil, fmt.Errorf("%w: $ref %q has no fragment", modelerr.ErrInvalidURI, ref)
	}
	rawURL := ref[:hashIdx]
	fragment := ref[hashIdx+1:]
	if !strings.Contains(fragment, "/") {
		return nil, fmt.Errorf("%w: $ref %q fragment %q has no path", modelerr.ErrInvalidURI, ref, fragment)
	}
	schemaName := path.Base(fragment)

	targetFile := loc.file
	domain := loc.domain
	crossFile := rawURL != ""
	if crossFile {
		resolved, err := c.resolveURL(loc.file, rawURL)
		if err != nil {
			return nil, err
		}
		targetFile = resolved
		domain = domainFromPath(targetFile)
	}

	key := model.NewReferenceKey(domain, filepath.Base(targetFile), schemaName)
	if idx, ok := c.index[key]; ok {
		c.refTargets[refNode] = key
		return c.schemas[idx], nil
	}

	doc, err := c.loadPartial(targetFile)
	if err != nil {
		if exists, _ := afero.Exists(c.fs, targetFile); !exists && !c.strictMissingRefs {
			c.logger.Info("skipping $ref to missing file", "ref", ref, "file", targetFile)
			return nil, nil
		}
		return nil, err
	}
	schema := lookupSchema(doc, schemaName)
	if schema == nil {
		if c.strictMissingRefs {
			return nil, modelerr.NewMissingSchema(key.String())
		}
		c.logger.Info("skipping unresolved $ref", "ref", ref, "key", key.String())
		return nil, nil
	}

	item, isNew := c.register(domain, targetFile, schemaName, schema, false)
	c.refTargets[refNode] = key
	if !isNew {
		return item, nil
	}

	if crossFile {
		if err := c.expandSiblings(domain, targetFile); err != nil {
			return nil, err
		}
	}

	childLoc := location{domain: domain, file: targetFile}
	if err := c.descendChildren(childLoc, schemaName, schema); err != nil {
		return nil, err
	}
	return item, nil
}

// lookupSchema finds schemaName in doc's components.schemas, tolerating a
// document with no Components block.
func lookupSchema(doc *openapi.PartialDocument, schemaName string) *openapi.Schema {
	if doc == nil || doc.Components == nil {
		return nil
	}
	return doc.Components.Schemas[schemaName]
}

// loadPartial reads and caches the partial document at path, so a file
// referenced by many schemas is parsed exactly once.
func (c *Collector) loadPartial(path string) (*openapi.PartialDocument, error) {
	if doc, ok := c.scannedFiles[path]; ok {
		return doc, nil
	}
	doc, err := openapi.LoadPartial(c.fs, path)
	if err != nil {
		return nil, err
	}
	c.scannedFiles[path] = doc
	return doc, nil
}

// resolveURL turns a $ref's non-empty URL component into a canonical local
// path: an absolute http(s) reference has its scheme and authority stripped
// and the whole remaining path is re-rooted under the input root; a
// relative reference is resolved against the directory of the file it
// appeared in.
func (c *Collector) resolveURL(fromFile, rawURL string) (string, error) {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", modelerr.ErrInvalidURI, rawURL, err)
		}
		remainder := strings.TrimPrefix(u.Path, "/")
		if remainder == "" {
			return "", fmt.Errorf("%w: %s: empty path", modelerr.ErrInvalidURI, rawURL)
		}
		return filepath.Clean(filepath.Join(c.root, remainder)), nil
	}
	return filepath.Clean(filepath.Join(filepath.Dir(fromFile), rawURL)), nil
}

// domainFromPath computes a file's domain by walking its path components:
// the first component after a "schemas" directory is the domain, except
// that a component equal to "v1" yields an empty domain. A path with no
// "schemas" component (e.g. the top-level openapi.yaml entry files) has an
// empty domain.
func domainFromPath(p string) string {
	clean := filepath.ToSlash(filepath.Clean(p))
	comps := strings.Split(clean, "/")
	for i, comp := range comps {
		if comp == "schemas" && i+1 < len(comps) {
			next := comps[i+1]
			if next == "v1" {
				return ""
			}
			return next
		}
	}
	return ""
}
