package model

import "github.com/bmcpi/redfish-modelgen/internal/openapi"

// SchemaItem is one collected schema: its identity (domain/file/name), the
// embedded Schema payload, and the flags the Collector and Duplicate
// Checker set.
type SchemaItem struct {
	Domain     string
	FileName   string
	SchemaName string
	Schema     *openapi.Schema
	Anonymous  bool
	Duplicated bool
}

// Key derives this item's ReferenceKey, its primary identity.
func (it *SchemaItem) Key() ReferenceKey {
	return NewReferenceKey(it.Domain, it.FileName, it.SchemaName)
}
