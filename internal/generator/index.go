package generator

import (
	"fmt"
	"sort"
	"strings"
)

// RenderDomainIndex renders a per-domain doc.go: Go has no mod.rs/lib.rs
// re-export mechanism (every file in a directory already shares its
// package), so this purely documents which module files live in the
// package (index/module file per domain directory).
func RenderDomainIndex(idx *DomainIndex) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Package %s holds the generated types for the %q domain.\n", idx.PackageName, idx.Domain)
	b.WriteString("//\n")
	b.WriteString("// Files:\n")
	for _, f := range idx.Files {
		fmt.Fprintf(&b, "//   - %s.go\n", f)
	}
	fmt.Fprintf(&b, "package %s\n", idx.PackageName)
	return b.String()
}

// RenderRootIndex renders the root package's doc.go, listing every
// root-level module file and every domain subpackage.
func RenderRootIndex(tree *OutputTree) string {
	var rootModules []string
	var domains []string
	for _, f := range tree.Files {
		if f.Domain == "" {
			rootModules = append(rootModules, f.Module)
		}
	}
	for _, idx := range tree.DomainIndexes {
		if idx.Domain != "" {
			domains = append(domains, idx.Domain)
		}
	}
	sort.Strings(rootModules)
	sort.Strings(domains)

	var b strings.Builder
	b.WriteString("// Package model holds the generated data model: every root-level module\n")
	b.WriteString("// file and every domain subpackage reachable from the reference closure.\n")
	b.WriteString("//\n")
	b.WriteString("// Root-level modules:\n")
	for _, m := range rootModules {
		fmt.Fprintf(&b, "//   - %s.go\n", m)
	}
	b.WriteString("//\n")
	b.WriteString("// Domains:\n")
	for _, d := range domains {
		fmt.Fprintf(&b, "//   - %s/\n", d)
	}
	b.WriteString("package model\n")
	return b.String()
}
