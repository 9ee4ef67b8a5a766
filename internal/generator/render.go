package generator

import (
	"fmt"
	"sort"
	"strings"
)

// Render turns a planned OutputFile into Go source text: the emission
// payload the Writer writes out. The text always ends with a newline.
func Render(file *OutputFile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "package %s\n\n", file.PackageName)

	var stdImports []string
	if file.NeedsFmt {
		stdImports = append(stdImports, "fmt")
	}
	if file.NeedsJSON {
		stdImports = append(stdImports, "encoding/json")
	}
	if len(stdImports) > 0 || len(file.CrossImports) > 0 {
		sort.Strings(stdImports)
		b.WriteString("import (\n")
		for _, imp := range stdImports {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
		if len(stdImports) > 0 && len(file.CrossImports) > 0 {
			b.WriteString("\n")
		}
		for _, imp := range file.CrossImports {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
		b.WriteString(")\n\n")
	}

	for _, u := range file.TopLevel {
		renderUnit(&b, u)
	}

	for _, vg := range file.VersionGroups {
		fmt.Fprintf(&b, "// %s\n\n", vg.Version.String())
		for _, u := range vg.Units {
			renderUnit(&b, u)
		}
	}

	return b.String()
}

func renderUnit(b *strings.Builder, u *EmissionUnit) {
	name := u.GoName()
	if u.Doc != "" {
		writeDocComment(b, u.Doc)
	}

	switch u.Category {
	case CategoryAlias:
		fmt.Fprintf(b, "type %s = %s\n\n", name, u.Alias.GoType)
	case CategoryStruct:
		renderStruct(b, name, u.Struct)
	case CategoryEnumUnit:
		renderEnumUnit(b, name, u.EnumUnit)
	case CategoryEnumNewtype:
		renderEnumNewtype(b, name, u.EnumNewtype)
	}
}

// writeDocComment renders the schema's description as a Go doc comment.
func writeDocComment(b *strings.Builder, doc string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		fmt.Fprintf(b, "// %s\n", strings.TrimSpace(line))
	}
}

func renderStruct(b *strings.Builder, name string, s *StructUnit) {
	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, f := range s.Fields {
		if f.ReadOnly {
			b.WriteString("\t// read-only\n")
		}
		if f.WriteOnly {
			b.WriteString("\t// write-only\n")
		}
		tag := f.WireName
		if f.Optional {
			tag += ",omitempty"
		}
		fmt.Fprintf(b, "\t%s %s `json:%q`\n", f.FieldName, f.GoType, tag)
	}
	b.WriteString("}\n\n")
}

func renderEnumUnit(b *strings.Builder, name string, e *EnumUnitUnit) {
	fmt.Fprintf(b, "type %s string\n\n", name)
	if len(e.Variants) == 0 {
		return
	}
	b.WriteString("const (\n")
	for _, v := range e.Variants {
		fmt.Fprintf(b, "\t%s%s %s = %q\n", name, v.Name, name, v.WireValue)
	}
	b.WriteString(")\n\n")
}

func renderEnumNewtype(b *strings.Builder, name string, e *EnumNewtypeUnit) {
	if e.DiscriminatorKey != "" {
		fmt.Fprintf(b, "// discriminated on %q\n", e.DiscriminatorKey)
	}
	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, v := range e.Variants {
		fmt.Fprintf(b, "\t%s *%s\n", v.Name, v.GoType)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// MarshalJSON implements the json.Marshaler interface for %s.\n", name)
	fmt.Fprintf(b, "func (v %s) MarshalJSON() ([]byte, error) {\n", name)
	b.WriteString("\tswitch {\n")
	for _, v := range e.Variants {
		fmt.Fprintf(b, "\tcase v.%s != nil:\n\t\treturn json.Marshal(v.%s)\n", v.Name, v.Name)
	}
	b.WriteString("\t}\n")
	b.WriteString("\treturn json.Marshal(nil)\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// UnmarshalJSON implements the json.Unmarshaler interface for %s.\n", name)
	fmt.Fprintf(b, "func (v *%s) UnmarshalJSON(data []byte) error {\n", name)
	for _, variant := range e.Variants {
		local := "candidate" + variant.Name
		fmt.Fprintf(b, "\tvar %s %s\n", local, variant.GoType)
		fmt.Fprintf(b, "\tif err := json.Unmarshal(data, &%s); err == nil {\n", local)
		fmt.Fprintf(b, "\t\tv.%s = &%s\n", variant.Name, local)
		b.WriteString("\t\treturn nil\n")
		b.WriteString("\t}\n")
	}
	fmt.Fprintf(b, "\treturn fmt.Errorf(\"no variant of %s matched\")\n", name)
	b.WriteString("}\n\n")
}
