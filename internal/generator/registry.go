package generator

import (
	"fmt"

	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// Registry indexes the closed-over schema sequence by ReferenceKey and
// carries the Collector's $ref-node resolution map, so type lowering
// can look up a ref's target without re-deriving its path.
type Registry struct {
	byKey      map[model.ReferenceKey]*model.SchemaItem
	refTargets map[*openapi.Schema]model.ReferenceKey
}

// NewRegistry builds a Registry from the Collector's closure output.
func NewRegistry(schemas []*model.SchemaItem, refTargets map[*openapi.Schema]model.ReferenceKey) *Registry {
	reg := &Registry{
		byKey:      make(map[model.ReferenceKey]*model.SchemaItem, len(schemas)),
		refTargets: refTargets,
	}
	for _, item := range schemas {
		reg.byKey[item.Key()] = item
	}
	return reg
}

// ByKey returns the item registered under key, if any.
func (r *Registry) ByKey(key model.ReferenceKey) (*model.SchemaItem, bool) {
	item, ok := r.byKey[key]
	return item, ok
}

// Lookup returns the item a $ref-bearing schema node resolved to, or
// (nil, false) when the Collector skipped it (warn-and-skip missing ref).
func (r *Registry) Lookup(refNode *openapi.Schema) (*model.SchemaItem, bool) {
	key, ok := r.refTargets[refNode]
	if !ok {
		return nil, false
	}
	item, ok := r.byKey[key]
	return item, ok
}

// resolveAliasChain follows a chain of $ref-only SchemaItems (Alias
// category) to the first item that is not itself a bare $ref: if the
// referent is itself a primitive alias, recurse into the referent.
func (r *Registry) resolveAliasChain(item *model.SchemaItem) (*model.SchemaItem, error) {
	seen := make(map[model.ReferenceKey]bool)
	for openapi.HasRef(item.Schema) {
		key := item.Key()
		if seen[key] {
			return nil, fmt.Errorf("%s: alias chain cycle", key.String())
		}
		seen[key] = true
		next, ok := r.Lookup(item.Schema)
		if !ok {
			return item, nil
		}
		item = next
	}
	return item, nil
}
