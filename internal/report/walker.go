package report

import (
	"fmt"
	"io"

	"github.com/oasmap/oasmap/internal/model"
)

// Options controls the tree rendering emitted while walking. The
// aggregated usage sequence is unaffected by either toggle.
type Options struct {
	// SchemaBodies enables pretty-printed schema bodies in the tree.
	SchemaBodies bool
}

// Walk traverses the document in declaration order - paths, then
// operations, then request body content entries, response codes and
// parameters - appending one SchemaUsage per schema-bearing site. The
// indented structure dump is written to w as the walk proceeds.
//
// The walk is deterministic: two walks over the same spec produce
// identical output and identical usage sequences.
func Walk(w io.Writer, spec *model.Spec, idx Index, opts Options) []model.SchemaUsage {
	var usages []model.SchemaUsage
	for _, p := range spec.Paths {
		fmt.Fprintf(w, "Path: %s\n", p.Path)
		for _, op := range p.Operations {
			usages = walkOperation(w, op, idx, opts, usages)
		}
	}
	return usages
}

func walkOperation(w io.Writer, op model.Operation, idx Index, opts Options, usages []model.SchemaUsage) []model.SchemaUsage {
	fmt.Fprintf(w, "  Operation: %s%s\n", op.Method, operationLabel(op))

	if op.RequestBody != nil && len(op.RequestBody.Content) > 0 {
		fmt.Fprintf(w, "    Request body:\n")
		for _, content := range op.RequestBody.Content {
			writeContent(w, content, idx, opts)
			usages = append(usages, model.SchemaUsage{
				SchemaName:  resolvedName(content.Schema, idx),
				RefPath:     directRef(content.Schema),
				Kind:        model.UsageRequest,
				OperationID: op.ID,
				Path:        op.Path,
			})
		}
	}

	for _, resp := range op.Responses {
		if len(resp.Content) == 0 {
			continue
		}
		fmt.Fprintf(w, "    Response %s:\n", resp.StatusCode)
		for _, content := range resp.Content {
			writeContent(w, content, idx, opts)
			usages = append(usages, model.SchemaUsage{
				SchemaName:  resolvedName(content.Schema, idx),
				RefPath:     directRef(content.Schema),
				Kind:        model.UsageResponse,
				OperationID: op.ID,
				Path:        op.Path,
				StatusCode:  resp.StatusCode,
			})
		}
	}

	for _, param := range op.Parameters {
		writeParameter(w, param, idx)
		usages = append(usages, model.SchemaUsage{
			SchemaName:    resolvedName(param.Schema, idx),
			RefPath:       directRef(param.Schema),
			Kind:          model.UsageParameter,
			OperationID:   op.ID,
			Path:          op.Path,
			ParameterName: param.Name,
		})
	}

	return usages
}

func operationLabel(op model.Operation) string {
	label := ""
	if op.ID != "" {
		label += " " + op.ID
	}
	if op.Summary != "" {
		label += " - " + op.Summary
	}
	return label
}

func writeContent(w io.Writer, content model.MediaTypeContent, idx Index, opts Options) {
	if name, ok := Resolve(content.Schema, idx); ok {
		fmt.Fprintf(w, "      Content: %s -> %s\n", content.MediaType, name)
	} else {
		fmt.Fprintf(w, "      Content: %s\n", content.MediaType)
	}
	if opts.SchemaBodies && content.Schema != nil {
		fmt.Fprintf(w, "        %s\n", prettyJSON(content.Schema, "        "))
	}
}

func writeParameter(w io.Writer, param model.Parameter, idx Index) {
	line := fmt.Sprintf("    Parameter: %s %s", param.In, param.Name)
	if t := parameterType(param.Schema, idx); t != "" {
		line += " (" + t + ")"
	}
	if param.Description != "" {
		line += " - " + param.Description
	}
	fmt.Fprintln(w, line)
}

func parameterType(s *model.Schema, idx Index) string {
	if s == nil {
		return ""
	}
	if name, ok := Resolve(s, idx); ok {
		return name
	}
	return s.Type
}

func resolvedName(s *model.Schema, idx Index) string {
	name, _ := Resolve(s, idx)
	return name
}

// directRef returns the raw reference target only when the occurrence
// itself was declared as a $ref; array-of-reference occurrences are
// inline, even though they resolve to the element's name.
func directRef(s *model.Schema) string {
	if s.IsReference() {
		return s.Ref
	}
	return ""
}
