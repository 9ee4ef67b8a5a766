package model

import "strings"

// TypeCoordinates is the ordered path of namespace components that locates
// an emitted type in the output tree: [root, domain?, module?, version?, typeName],
// each component omitted when empty.
type TypeCoordinates struct {
	Root    string
	Domain  string
	Module  string
	Version Version
	Name    string
}

// Path returns the non-empty components in order, e.g.
// ["redfish", "chassis", "Chassis", "v1_0_0", "PhysicalSecurity"].
func (c TypeCoordinates) Path() []string {
	parts := make([]string, 0, 5)
	if c.Root != "" {
		parts = append(parts, c.Root)
	}
	if c.Domain != "" {
		parts = append(parts, c.Domain)
	}
	if c.Module != "" {
		parts = append(parts, c.Module)
	}
	if c.Version.Present() {
		parts = append(parts, c.Version.String())
	}
	parts = append(parts, c.Name)
	return parts
}

// String renders the path joined with "::", the identity used by the
// Duplicate Checker to detect colliding anonymous type paths.
func (c TypeCoordinates) String() string {
	return strings.Join(c.Path(), "::")
}

// ImportPath renders the filesystem-facing portion (everything but the
// version and type name) joined with "/", e.g. "chassis/chassis".
func (c TypeCoordinates) ImportPath() string {
	parts := make([]string, 0, 2)
	if c.Domain != "" {
		parts = append(parts, c.Domain)
	}
	if c.Module != "" {
		parts = append(parts, c.Module)
	}
	return strings.Join(parts, "/")
}
