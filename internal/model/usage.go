package model

// UsageKind classifies the location a schema occurrence was attached
// to: a request body content entry, a response content entry, or a
// parameter.
type UsageKind string

const (
	UsageRequest   UsageKind = "request"
	UsageResponse  UsageKind = "response"
	UsageParameter UsageKind = "parameter"
)

// SchemaUsage is one record of the schema usage map: a single
// schema-bearing site encountered during traversal. Records are
// appended in document order and never mutated afterwards.
type SchemaUsage struct {
	// SchemaName is the resolved or inferred component name; empty
	// when the occurrence is fully anonymous.
	SchemaName string

	// RefPath is the raw $ref target string, set only when the
	// occurrence itself was declared as a direct reference.
	RefPath string

	Kind        UsageKind
	OperationID string
	Path        string

	// ParameterName is set only for parameter usages.
	ParameterName string

	// StatusCode is set only for response usages.
	StatusCode string
}
