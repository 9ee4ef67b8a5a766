// Package collector implements the reference-closure engine:
// starting from every operation's request/response carrier, it resolves and
// recursively traverses $ref targets, promotes inline anonymous schemas to
// synthesized names, expands sibling un-versioned fragment files, and
// de-duplicates by ReferenceKey until the closure is exhausted.
package collector

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
	"github.com/bmcpi/redfish-modelgen/internal/walker"
)

// Collector accumulates the reference closure across every operation the
// Walker visits.
type Collector struct {
	fs     afero.Fs
	root   string
	logger logr.Logger

	// strictMissingRefs turns an unresolved $ref target into a fatal error
	// instead of a logged warning.
	strictMissingRefs bool

	schemas []*model.SchemaItem
	index   map[model.ReferenceKey]int

	// scannedFiles dedups partial-document reads: a file is parsed at most
	// once regardless of how many distinct schemas within it are referenced.
	scannedFiles map[string]*openapi.PartialDocument

	// refTargets records, for every $ref-bearing schema node resolved during
	// the closure, the ReferenceKey it resolved to -- a Go-specific addition
	// letting the Generator's type-lowering step look up a
	// ref's target without re-deriving domain/file/name a second time.
	refTargets map[*openapi.Schema]model.ReferenceKey
}

// New constructs a Collector rooted at root, reading through fs.
func New(fs afero.Fs, root string, logger logr.Logger, strictMissingRefs bool) *Collector {
	return &Collector{
		fs:                fs,
		root:              root,
		logger:            logger,
		strictMissingRefs: strictMissingRefs,
		index:             make(map[model.ReferenceKey]int),
		scannedFiles:      make(map[string]*openapi.PartialDocument),
		refTargets:        make(map[*openapi.Schema]model.ReferenceKey),
	}
}

// location threads the domain/file the current traversal position was
// reached from, needed to resolve same-file ($ref with no URL part) refs and
// to name freshly promoted anonymous children.
type location struct {
	domain string
	file   string
}

// Collect walks every openapi.yaml under root and returns the closure of
// collected SchemaItems, sorted by ReferenceKey.
func (c *Collector) Collect() ([]*model.SchemaItem, error) {
	err := walker.Walk(c.fs, c.root, c.visitOperation)
	if err != nil {
		return nil, err
	}

	sort.Slice(c.schemas, func(i, j int) bool {
		return c.schemas[i].Key().Less(c.schemas[j].Key())
	})
	// index is now stale relative to slice order, but Collect is a terminal
	// call: nothing downstream looks schemas back up through c.index.
	return c.schemas, nil
}

// RefTargets exposes the $ref-node -> ReferenceKey map built during
// collection, for the Generator's type-lowering step.
func (c *Collector) RefTargets() map[*openapi.Schema]model.ReferenceKey {
	return c.refTargets
}

// visitOperation is the walker.OperationVisitor entry point:
// it collects the request body (if any) and every response's body,
// including the literal "default" key, as the operation's carriers.
func (c *Collector) visitOperation(root, file, pathTemplate, method string, op *openapi.Operation) error {
	domain := domainFromPath(file)
	resource := resourceName(pathTemplate)
	loc := location{domain: domain, file: file}

	if op.RequestBody != nil {
		if schema := firstContentSchema(op.RequestBody.Content); schema != nil {
			name := fmt.Sprintf("%s-%s-Request", strings.ToLower(method), resource)
			if err := c.collectCarrier(loc, name, schema); err != nil {
				return err
			}
		}
	}

	for _, status := range sortedResponseKeys(op.Responses) {
		schema := firstContentSchema(op.Responses[status].Content)
		if schema == nil {
			continue
		}
		code := status
		if status == "default" {
			code = "0"
		}
		name := fmt.Sprintf("%s-%s-%sResponse", strings.ToLower(method), resource, code)
		if err := c.collectCarrier(loc, name, schema); err != nil {
			return err
		}
	}

	return nil
}

// collectCarrier handles one request/response body carrier: a bare $ref is
// resolved directly, an inline schema is promoted under the synthesized
// name unconditionally and then its children are traversed.
func (c *Collector) collectCarrier(loc location, name string, schema *openapi.Schema) error {
	if openapi.HasRef(schema) {
		_, err := c.resolveRef(loc, schema)
		return err
	}

	item, isNew := c.register(loc.domain, loc.file, name, schema, true)
	if !isNew {
		return nil
	}
	return c.descendChildren(location{domain: loc.domain, file: loc.file}, item.SchemaName, schema)
}

// register adds item to the closure if its ReferenceKey is not already
// present, returning the (possibly pre-existing) item and whether it was
// newly added. file is the full resolved path used for loading; only its
// base name becomes part of the item's identity (FileName is the bare file
// the schema was defined in, not an absolute path, so identity stays stable
// across input roots).
func (c *Collector) register(domain, file, name string, schema *openapi.Schema, anonymous bool) (*model.SchemaItem, bool) {
	fileName := filepath.Base(file)
	key := model.NewReferenceKey(domain, fileName, name)
	if idx, ok := c.index[key]; ok {
		return c.schemas[idx], false
	}
	item := &model.SchemaItem{
		Domain:     domain,
		FileName:   fileName,
		SchemaName: name,
		Schema:     schema,
		Anonymous:  anonymous,
	}
	c.index[key] = len(c.schemas)
	c.schemas = append(c.schemas, item)
	return item, true
}

func firstContentSchema(content map[string]*openapi.MediaType) *openapi.Schema {
	if len(content) == 0 {
		return nil
	}
	if mt, ok := content["application/json"]; ok && mt != nil {
		return mt.Schema
	}
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return content[keys[0]].Schema
}

func sortedResponseKeys(responses map[string]*openapi.Response) []string {
	keys := make([]string, 0, len(responses))
	for k := range responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resourceName derives the anonymous-promotion resource token from a path
// template: drop the first three raw "/"-split segments
// (scheme/host placeholder is irrelevant locally, but the Redfish path
// itself always carries a leading empty segment plus two fixed prefix
// segments, e.g. "", "redfish", "v1"), strip "{"/"}" from the remainder's
// parameter segments, and join what's left with "-".
func resourceName(pathTemplate string) string {
	segments := strings.Split(pathTemplate, "/")
	var rest []string
	if len(segments) > 3 {
		rest = segments[3:]
	}
	for i, s := range rest {
		rest[i] = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	}
	return strings.Join(rest, "-")
}
