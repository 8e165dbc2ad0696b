package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasmap/oasmap/internal/model"
)

func TestBuildIndexDistinctBodies(t *testing.T) {
	idx := BuildIndex([]model.NamedSchema{
		{Name: "Pet", Schema: petBody()},
		{Name: "Count", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "integer"}},
		{Name: "Name", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "string"}},
	})

	require.Len(t, idx, 3)
	require.Equal(t, "Pet", idx[CanonicalJSON(petBody())])
}

func TestBuildIndexLastDeclarationWins(t *testing.T) {
	// Structurally identical components collapse onto one key; the
	// later declaration owns it.
	idx := BuildIndex([]model.NamedSchema{
		{Name: "Pet", Schema: petBody()},
		{Name: "Animal", Schema: petBody()},
	})

	require.Len(t, idx, 1)
	require.Equal(t, "Animal", idx[CanonicalJSON(petBody())])
}

func TestBuildIndexEmpty(t *testing.T) {
	require.Empty(t, BuildIndex(nil))
	require.Empty(t, BuildIndex([]model.NamedSchema{{Name: "Broken", Schema: nil}}))
}

func TestCanonicalJSONDeterministic(t *testing.T) {
	a := &model.Schema{
		Kind: model.KindObject,
		Type: "object",
		Properties: []model.Property{
			{Name: "b", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "string"}},
			{Name: "a", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "integer"}},
		},
	}
	b := &model.Schema{
		Kind: model.KindObject,
		Type: "object",
		Properties: []model.Property{
			{Name: "a", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "integer"}},
			{Name: "b", Schema: &model.Schema{Kind: model.KindPrimitive, Type: "string"}},
		},
	}

	require.Equal(t, CanonicalJSON(a), CanonicalJSON(b))
	require.NotContains(t, CanonicalJSON(a), " ")
}

func TestCanonicalJSONReferenceLeaf(t *testing.T) {
	ref := &model.Schema{Kind: model.KindReference, Ref: "#/components/schemas/Pet"}
	require.Equal(t, `{"$ref":"#/components/schemas/Pet"}`, CanonicalJSON(ref))
}
