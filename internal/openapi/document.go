package openapi

import "encoding/json"

// HTTPMethods lists every method the Walker visits per path,
// in the fixed order operations are processed for deterministic output.
var HTTPMethods = []string{
	"get", "put", "post", "delete", "options", "head", "patch", "trace",
}

// Document is a full OpenAPI 3.0/3.1 document. Unknown/x- fields are
// preserved verbatim in Extra.
type Document struct {
	OpenAPI           string                `json:"openapi"`
	Info              *Info                 `json:"info,omitempty"`
	JSONSchemaDialect string                `json:"jsonSchemaDialect,omitempty"`
	Paths             map[string]*PathItem  `json:"paths,omitempty"`
	Webhooks          map[string]*PathItem  `json:"webhooks,omitempty"`
	Components        *Components           `json:"components,omitempty"`
	Extra             map[string]json.RawMessage `json:"-"`
}

// PartialDocument is a Redfish sharding artifact: a file carrying only
// components.schemas, violating strict OpenAPI. It is a distinct input
// type, not silently coerced into Document.
type PartialDocument struct {
	Components *Components                `json:"components,omitempty"`
	Extra      map[string]json.RawMessage `json:"-"`
}

// Info is the OpenAPI info object (only the fields the pipeline touches;
// everything else rides in the owning Document's Extra).
type Info struct {
	Title   string `json:"title,omitempty"`
	Version string `json:"version,omitempty"`
}

// PathItem is one entry in Document.Paths: an operation per HTTP method.
// Path-level parameters and other path-item fields are not decoded.
type PathItem struct {
	Get     *Operation `json:"get,omitempty"`
	Put     *Operation `json:"put,omitempty"`
	Post    *Operation `json:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty"`
	Options *Operation `json:"options,omitempty"`
	Head    *Operation `json:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty"`
	Trace   *Operation `json:"trace,omitempty"`
}

// ByMethod returns the Operation for a lower-case HTTP method name, or nil.
func (p *PathItem) ByMethod(method string) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	case "trace":
		return p.Trace
	default:
		return nil
	}
}

// Operation is one HTTP-method handler under a path.
type Operation struct {
	OperationID string               `json:"operationId,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses,omitempty"`
}

// RequestBody carries the request schema carrier.
type RequestBody struct {
	Required bool                   `json:"required,omitempty"`
	Content  map[string]*MediaType `json:"content,omitempty"`
}

// Response carries the response schema carrier for one status code,
// including the literal "default" key (Obligatory capabilities).
type Response struct {
	Description string                 `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// MediaType wraps the schema for one content-type (spec uses only the
// schema; encoding/examples are not part of the closure).
type MediaType struct {
	Schema *SchemaOrRef `json:"schema,omitempty"`
}

// Components is the OpenAPI components object. Responses is decoded, but
// the pipeline only reads Schemas: $ref resolution never looks into
// components.responses.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// SchemaOrRef is a request/response body's schema carrier: either an inline
// Schema or a bare {"$ref": "..."} node. Because jsonschema.Schema already
// has a Ref field that coexists with every other schema keyword, SchemaOrRef
// is just Schema; the name documents intent at call sites.
type SchemaOrRef = Schema
