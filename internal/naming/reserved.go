package naming

// goKeywords are Go's reserved words. Because generated type and field
// names are always the exported (capitalized) form of UpperCamelCase, they
// can never collide with a keyword (keywords are all lower-case and Go
// identifiers are case-sensitive). The collision shows up instead where
// this pipeline mints a *lower-case* Go identifier: package names derived
// from a domain or module (see naming.PackageName).
var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
}

// EscapeReserved appends a trailing underscore when ident collides with a
// Go keyword. It is a no-op for every identifier that isn't a bare keyword.
func EscapeReserved(ident string) string {
	if goKeywords[ident] {
		return ident + "_"
	}
	return ident
}

// PackageName renders a lower-case, keyword-escaped Go package name from a
// domain or module segment, e.g. "ComputerSystem" -> "computer_system",
// "type" -> "type_".
func PackageName(segment string) string {
	return EscapeReserved(SnakeCase(segment))
}
