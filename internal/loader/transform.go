package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"go.yaml.in/yaml/v4"

	"github.com/oasmap/oasmap/internal/model"
)

// Transform flattens the libopenapi document graph into the internal
// model, preserving document declaration order throughout: component
// schemas, paths, and within each operation the request body content
// entries, response codes, and parameters.
func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	spec := &model.Spec{
		Info: transformInfo(doc.Info),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			spec.Schemas = append(spec.Schemas, model.NamedSchema{
				Name:   name,
				Schema: transformSchema(schemaProxy.Schema()),
			})
		}
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			path, ops := transformPath(pathStr, pathItem)
			spec.Paths = append(spec.Paths, path)
			spec.Operations = append(spec.Operations, ops...)
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformPath(pathStr string, pathItem *v3.PathItem) (model.Path, []model.Operation) {
	path := model.Path{Path: pathStr}
	var ops []model.Operation

	// Use a slice for deterministic ordering
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodPatch, pathItem.Patch},
		{model.MethodHead, pathItem.Head},
		{model.MethodOptions, pathItem.Options},
		{model.MethodTrace, pathItem.Trace},
		{model.MethodQuery, pathItem.Query}, // OpenAPI 3.2
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		operation := transformOperation(m.method, pathStr, m.op)
		ops = append(ops, operation)
		path.Operations = append(path.Operations, operation)
	}

	return path, ops
}

func transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  boolPtr(op.Deprecated),
	}

	if op.RequestBody != nil {
		operation.RequestBody = transformRequestBody(op.RequestBody)
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			operation.Responses = append(operation.Responses, transformResponse(code, resp))
		}
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, transformParameter(p))
	}

	return operation
}

func transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
		Deprecated:  p.Deprecated,
	}

	if p.Schema != nil {
		param.Schema = transformSchemaProxy(p.Schema)
	} else if p.Content != nil {
		// OpenAPI 3.2: querystring parameters use content instead of schema
		for _, content := range p.Content.FromOldest() {
			if content.Schema != nil {
				param.Schema = transformSchemaProxy(content.Schema)
				break
			}
		}
	}

	return param
}

func transformRequestBody(rb *v3.RequestBody) *model.RequestBody {
	body := &model.RequestBody{
		Description: rb.Description,
		Required:    boolPtr(rb.Required),
	}

	if rb.Content != nil {
		for mediaType, content := range rb.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = transformSchemaProxy(content.Schema)
			}
			body.Content = append(body.Content, mtc)
		}
	}

	return body
}

func transformResponse(code string, resp *v3.Response) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}

	if resp.Content != nil {
		for mediaType, content := range resp.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = transformSchemaProxy(content.Schema)
			}
			response.Content = append(response.Content, mtc)
		}
	}

	return response
}

// transformSchemaProxy keeps direct references as reference-kind
// leaves carrying the raw target string and the target's title. Not
// recursing through references keeps cyclic component graphs finite
// and keeps the canonical form of an inline copy identical to the
// declared component body it was copied from.
func transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	if ref := proxy.GetReference(); ref != "" {
		schema := &model.Schema{
			Kind: model.KindReference,
			Ref:  ref,
		}
		if target := proxy.Schema(); target != nil {
			schema.Title = target.Title
			if len(target.Type) > 0 {
				schema.Type = target.Type[0]
			}
		}
		return schema
	}

	return transformSchema(proxy.Schema())
}

func transformSchema(s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Title:       s.Title,
		Description: s.Description,
		Format:      s.Format,
		Nullable:    boolPtr(s.Nullable),
		Deprecated:  boolPtr(s.Deprecated),
		Default:     decodeNode(s.Default),
		Example:     decodeNode(s.Example),
		Pattern:     s.Pattern,
		UniqueItems: boolPtr(s.UniqueItems),
	}

	if len(s.Type) > 0 {
		schema.Type = s.Type[0]
	}

	for _, e := range s.Enum {
		schema.Enum = append(schema.Enum, decodeNode(e))
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: transformSchemaProxy(propProxy),
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		schema.Items = transformSchemaProxy(s.Items.A)
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.A != nil {
		schema.AdditionalProperties = transformSchemaProxy(s.AdditionalProperties.A)
	}

	for _, proxy := range s.AllOf {
		schema.AllOf = append(schema.AllOf, transformSchemaProxy(proxy))
	}
	for _, proxy := range s.OneOf {
		schema.OneOf = append(schema.OneOf, transformSchemaProxy(proxy))
	}
	for _, proxy := range s.AnyOf {
		schema.AnyOf = append(schema.AnyOf, transformSchemaProxy(proxy))
	}

	if s.Minimum != nil {
		v := float64(*s.Minimum)
		schema.Minimum = &v
	}
	if s.Maximum != nil {
		v := float64(*s.Maximum)
		schema.Maximum = &v
	}
	if s.MinLength != nil {
		v := int64(*s.MinLength)
		schema.MinLength = &v
	}
	if s.MaxLength != nil {
		v := int64(*s.MaxLength)
		schema.MaxLength = &v
	}
	if s.MinItems != nil {
		v := int64(*s.MinItems)
		schema.MinItems = &v
	}
	if s.MaxItems != nil {
		v := int64(*s.MaxItems)
		schema.MaxItems = &v
	}

	schema.Kind = classify(schema)

	return schema
}

func classify(s *model.Schema) model.SchemaKind {
	switch {
	case s.Type == "array" || s.Items != nil:
		return model.KindArray
	case s.Type == "object", len(s.Properties) > 0, s.AdditionalProperties != nil,
		len(s.AllOf) > 0, len(s.OneOf) > 0, len(s.AnyOf) > 0:
		return model.KindObject
	default:
		return model.KindPrimitive
	}
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func decodeNode(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value
	}
	return v
}
