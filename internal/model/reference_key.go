package model

import "fmt"

// ReferenceKey is the canonical "{domain}/{file}#{schemaName}" identity of a
// collected schema. It is a comparable struct so it can be
// used directly as a map key without a separate interning step.
type ReferenceKey struct {
	Domain     string
	FileName   string
	SchemaName string
}

// NewReferenceKey builds a ReferenceKey from its components.
func NewReferenceKey(domain, fileName, schemaName string) ReferenceKey {
	return ReferenceKey{Domain: domain, FileName: fileName, SchemaName: schemaName}
}

// String renders "{domain}/{file}#{schemaName}".
func (k ReferenceKey) String() string {
	return fmt.Sprintf("%s/%s#%s", k.Domain, k.FileName, k.SchemaName)
}

// Less provides the ordering used to sort the collected schema sequence
//: lexicographic over the canonical string.
func (k ReferenceKey) Less(o ReferenceKey) bool {
	return k.String() < o.String()
}
