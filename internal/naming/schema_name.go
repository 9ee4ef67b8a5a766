package naming

import (
	"strings"

	"github.com/bmcpi/redfish-modelgen/internal/model"
)

// ParsedSchemaName is the decomposition of a raw schema_name into its
// module, version and type-tail components.
type ParsedSchemaName struct {
	Module  string
	Version model.Version
	Tail    string
}

// ParseSchemaName decomposes schema_name following the Redfish convention
// "{ModuleBase}_v{M}_{m}_{p}_{TypeTail}" or "{ModuleBase}_{TypeTail}" or
// "{Tail}". A name containing a hyphen is a synthesized anonymous promoted
// name and is treated as opaque here: its Tail is the whole hyphenated
// string, letting UpperCamelCase split on the hyphen itself during
// type-name composition.
func ParseSchemaName(schemaName string) ParsedSchemaName {
	if strings.Contains(schemaName, "-") {
		return ParsedSchemaName{Tail: schemaName}
	}

	tokens := strings.Split(schemaName, "_")
	if len(tokens) == 0 {
		return ParsedSchemaName{Tail: schemaName}
	}

	tail := tokens[len(tokens)-1]
	rest := tokens[:len(tokens)-1]

	if len(rest) >= 3 {
		candidate := rest[len(rest)-3:]
		if v, ok := tryParseVersionTriple(candidate); ok {
			module := strings.Join(rest[:len(rest)-3], "_")
			return ParsedSchemaName{Module: module, Version: v, Tail: tail}
		}
	}

	return ParsedSchemaName{Module: strings.Join(rest, "_"), Tail: tail}
}

// tryParseVersionTriple attempts to read [v, M, m, p]-as-3-tokens where the
// first token is "vM" (leading "v" + digits) and the remaining two are bare
// digit strings, e.g. ["v1", "0", "0"].
func tryParseVersionTriple(tokens []string) (model.Version, bool) {
	if len(tokens) != 3 {
		return model.Version{}, false
	}
	if !strings.HasPrefix(tokens[0], "v") {
		return model.Version{}, false
	}
	joined := strings.Join(tokens, "_")
	return model.ParseVersion(joined)
}
