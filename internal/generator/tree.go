package generator

import (
	"sort"
	"strings"

	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/naming"
)

// VersionGroup is the set of units sharing one version triple within an
// output file, emitted in ascending version order.
type VersionGroup struct {
	Version model.Version
	Units   []*EmissionUnit
}

// OutputFile is one planned Go source file: every EmissionUnit sharing a
// (domain, module) pair (one file per module).
type OutputFile struct {
	RelPath       string // e.g. "chassis/chassis.go", or "computer_system.go" at the root
	PackageName   string
	Domain        string
	Module        string
	TopLevel      []*EmissionUnit
	VersionGroups []VersionGroup
	NeedsJSON     bool
	NeedsFmt      bool
	// CrossImports holds the full import paths of every sibling domain
	// package this file's types reference (a struct field, alias, or enum
	// variant qualified as "otherdomain.Foo"), sorted. Go packages need an
	// explicit import for this where the source language's nested modules
	// did not (see DESIGN.md).
	CrossImports []string
}

// DomainIndex documents the module files collected under one domain
// package, standing in for the source language's mod.rs/lib.rs re-export
// file: Go needs no such file for visibility (every file in a directory
// shares its package automatically), so this becomes a doc.go carrying a
// package comment instead of a re-export list (see DESIGN.md).
type DomainIndex struct {
	Domain      string
	PackageName string
	Files       []string // module base names (no extension), sorted
}

// OutputTree is the complete planned output: every file the Writer will
// create.
type OutputTree struct {
	Files         []*OutputFile
	DomainIndexes []*DomainIndex
	ImportBase    string
}

type fileKey struct {
	domain string
	module string
}

// BuildTree partitions units by (domain, module), sorts within each
// partition, orders the files by RelPath, and derives one index per
// non-empty domain directory.
// importBase is the Go import path the output tree will live under once
// written (e.g. "github.com/acme/widgets/internal/model"); it qualifies the
// import statements BuildTree generates for cross-domain type references. An
// empty importBase means no such import paths can be computed: files whose
// types reference another domain then carry no import for it and fail to
// compile. cliconfig leaves it empty when neither -go-module nor a go.mod
// above the output root is available.
func BuildTree(units []*EmissionUnit, importBase string) *OutputTree {
	groups := make(map[fileKey][]*EmissionUnit)
	var order []fileKey
	pkgNameToDomain := make(map[string]string)
	for _, u := range units {
		k := fileKey{domain: u.Coordinates.Domain, module: u.Coordinates.Module}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], u)
		pkgNameToDomain[naming.GoPackageName(u.Coordinates.Domain)] = u.Coordinates.Domain
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].domain != order[j].domain {
			return order[i].domain < order[j].domain
		}
		return order[i].module < order[j].module
	})

	tree := &OutputTree{ImportBase: importBase}
	domainFiles := make(map[string][]string)
	var domainOrder []string

	for _, k := range order {
		file := buildFile(k, groups[k], importBase, pkgNameToDomain)
		tree.Files = append(tree.Files, file)

		if _, seen := domainFiles[k.domain]; !seen {
			domainOrder = append(domainOrder, k.domain)
		}
		domainFiles[k.domain] = append(domainFiles[k.domain], k.module)
	}
	sort.Slice(tree.Files, func(i, j int) bool { return tree.Files[i].RelPath < tree.Files[j].RelPath })

	sort.Strings(domainOrder)
	for _, domain := range domainOrder {
		if domain == "" {
			continue // root-level modules are listed by the root index instead
		}
		modules := domainFiles[domain]
		sort.Strings(modules)
		tree.DomainIndexes = append(tree.DomainIndexes, &DomainIndex{
			Domain:      domain,
			PackageName: naming.GoPackageName(domain),
			Files:       modules,
		})
	}

	return tree
}

func buildFile(k fileKey, units []*EmissionUnit, importBase string, pkgNameToDomain map[string]string) *OutputFile {
	file := &OutputFile{
		Domain:      k.domain,
		Module:      k.module,
		PackageName: naming.GoPackageName(k.domain),
	}
	if k.domain == "" {
		file.RelPath = k.module + ".go"
	} else {
		file.RelPath = k.domain + "/" + k.module + ".go"
	}

	byVersion := make(map[model.Version][]*EmissionUnit)
	var versions []model.Version
	for _, u := range units {
		v := u.Coordinates.Version
		if !v.Present() {
			file.TopLevel = append(file.TopLevel, u)
			continue
		}
		if _, seen := byVersion[v]; !seen {
			versions = append(versions, v)
		}
		byVersion[v] = append(byVersion[v], u)
		if unitNeedsJSON(u) {
			file.NeedsJSON = true
		}
		if u.Category == CategoryEnumNewtype {
			file.NeedsFmt = true
		}
	}

	sort.Slice(file.TopLevel, func(i, j int) bool { return file.TopLevel[i].GoName() < file.TopLevel[j].GoName() })
	for _, u := range file.TopLevel {
		if unitNeedsJSON(u) {
			file.NeedsJSON = true
		}
		if u.Category == CategoryEnumNewtype {
			file.NeedsFmt = true
		}
	}

	sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })
	for _, v := range versions {
		vu := byVersion[v]
		sort.Slice(vu, func(i, j int) bool { return vu[i].GoName() < vu[j].GoName() })
		file.VersionGroups = append(file.VersionGroups, VersionGroup{Version: v, Units: vu})
	}

	file.CrossImports = crossImports(file, importBase, pkgNameToDomain)

	return file
}

// crossImports scans every unit's Go type references for a sibling-domain
// package qualifier ("chassis.Status") and returns the sorted import paths
// needed to make them compile.
func crossImports(file *OutputFile, importBase string, pkgNameToDomain map[string]string) []string {
	domains := make(map[string]bool)
	scan := func(u *EmissionUnit) {
		for _, goType := range unitGoTypeStrings(u) {
			pkg, ok := packageQualifier(goType)
			if !ok || pkg == file.PackageName {
				continue
			}
			if domain, known := pkgNameToDomain[pkg]; known {
				domains[domain] = true
			}
		}
	}
	for _, u := range file.TopLevel {
		scan(u)
	}
	for _, vg := range file.VersionGroups {
		for _, u := range vg.Units {
			scan(u)
		}
	}

	if len(domains) == 0 {
		return nil
	}
	paths := make([]string, 0, len(domains))
	for domain := range domains {
		if importBase == "" {
			continue
		}
		paths = append(paths, importBase+"/"+domain)
	}
	sort.Strings(paths)
	return paths
}

// unitGoTypeStrings returns every Go type literal a unit's rendering will
// reference: struct field types, an alias's target, or an EnumNewtype's
// variant types.
func unitGoTypeStrings(u *EmissionUnit) []string {
	switch u.Category {
	case CategoryAlias:
		if u.Alias == nil {
			return nil
		}
		return []string{u.Alias.GoType}
	case CategoryStruct:
		if u.Struct == nil {
			return nil
		}
		out := make([]string, len(u.Struct.Fields))
		for i, f := range u.Struct.Fields {
			out[i] = f.GoType
		}
		return out
	case CategoryEnumNewtype:
		if u.EnumNewtype == nil {
			return nil
		}
		out := make([]string, len(u.EnumNewtype.Variants))
		for i, v := range u.EnumNewtype.Variants {
			out[i] = v.GoType
		}
		return out
	default:
		return nil
	}
}

// packageQualifier extracts the leading package identifier from a lowered
// Go type literal ("*chassis.Status", "[]chassis.Status", "chassis.Status"),
// or reports false for unqualified types ("string", "[]int64").
func packageQualifier(goType string) (string, bool) {
	t := strings.TrimLeft(goType, "[]*")
	dot := strings.IndexByte(t, '.')
	if dot <= 0 {
		return "", false
	}
	pkg := t[:dot]
	for _, r := range pkg {
		isLower := r >= 'a' && r <= 'z'
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		if !isLower && !isUpper && !isDigit && r != '_' {
			return "", false
		}
	}
	return pkg, true
}

// unitNeedsJSON reports whether a unit's rendering references the
// encoding/json package directly: a plain struct tag needs no import, but
// an EnumNewtype's hand-written Marshal/UnmarshalJSON does, as does any
// field lowered to json.RawMessage.
func unitNeedsJSON(u *EmissionUnit) bool {
	if u.Category == CategoryEnumNewtype {
		return true
	}
	if u.Struct != nil {
		for _, f := range u.Struct.Fields {
			if strings.Contains(f.GoType, "json.RawMessage") {
				return true
			}
		}
	}
	return false
}
