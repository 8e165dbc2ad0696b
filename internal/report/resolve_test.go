package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasmap/oasmap/internal/model"
)

func petBody() *model.Schema {
	return &model.Schema{
		Kind: model.KindObject,
		Type: "object",
		Properties: []model.Property{
			{Name: "id", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "integer"}},
			{Name: "name", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "string"}},
		},
		Required: []string{"id", "name"},
	}
}

func TestResolve(t *testing.T) {
	idx := BuildIndex([]model.NamedSchema{
		{Name: "Pet", Schema: petBody()},
		{Name: "Count", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "integer"}},
	})

	tests := []struct {
		name     string
		schema   *model.Schema
		wantName string
		wantOK   bool
	}{
		{
			name:     "direct reference with title",
			schema:   &model.Schema{Kind: model.KindReference, Ref: "#/components/schemas/Pet", Title: "A pet"},
			wantName: "A pet",
			wantOK:   true,
		},
		{
			name:     "direct reference without title uses last segment",
			schema:   &model.Schema{Kind: model.KindReference, Ref: "#/components/schemas/Pet"},
			wantName: "Pet",
			wantOK:   true,
		},
		{
			name: "array of references resolves to element name",
			schema: &model.Schema{
				Kind:  model.KindArray,
				Type:  "array",
				Items: &model.Schema{Kind: model.KindReference, Ref: "#/components/schemas/Pet"},
			},
			wantName: "Pet",
			wantOK:   true,
		},
		{
			name: "array of titled inline items resolves to item title",
			schema: &model.Schema{
				Kind:  model.KindArray,
				Type:  "array",
				Items: &model.Schema{Kind: model.KindObject, Type: "object", Title: "Tag"},
			},
			wantName: "Tag",
			wantOK:   true,
		},
		{
			name: "array of untitled primitives stays anonymous",
			schema: &model.Schema{
				Kind:  model.KindArray,
				Type:  "array",
				Items: &model.Schema{Kind: model.KindPrimitive, Type: "string"},
			},
			wantOK: false,
		},
		{
			name:     "inline schema with own title",
			schema:   &model.Schema{Kind: model.KindObject, Type: "object", Title: "Order"},
			wantName: "Order",
			wantOK:   true,
		},
		{
			name:     "inline copy of a component body matches structurally",
			schema:   petBody(),
			wantName: "Pet",
			wantOK:   true,
		},
		{
			name:     "anonymous integer matches declared integer component",
			schema:   &model.Schema{Kind: model.KindPrimitive, Type: "integer"},
			wantName: "Count",
			wantOK:   true,
		},
		{
			name:   "anonymous inline schema",
			schema: &model.Schema{Kind: model.KindPrimitive, Type: "boolean"},
			wantOK: false,
		},
		{
			name:   "nil schema",
			schema: nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := Resolve(tt.schema, idx)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantName, name)
		})
	}
}

func TestResolveTitleWinsOverIndex(t *testing.T) {
	// A titled direct reference resolves to the title regardless of
	// what the index would say.
	idx := BuildIndex([]model.NamedSchema{{Name: "Pet", Schema: petBody()}})

	ref := &model.Schema{Kind: model.KindReference, Ref: "#/components/schemas/Pet", Title: "Household pet"}
	name, ok := Resolve(ref, idx)
	require.True(t, ok)
	require.Equal(t, "Household pet", name)
}

func TestResolveAnonymousWithEmptyIndex(t *testing.T) {
	name, ok := Resolve(&model.Schema{Kind: model.KindPrimitive, Type: "integer"}, Index{})
	require.False(t, ok)
	require.Empty(t, name)
}
