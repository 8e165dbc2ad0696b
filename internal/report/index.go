package report

import "github.com/oasmap/oasmap/internal/model"

// Index maps the canonical structural JSON of a component schema body
// to the component name that declares it. When two components are
// structurally identical the later declaration wins; the mapping is
// best-effort, not guaranteed unique.
type Index map[string]string

// BuildIndex builds the index from the document's component schemas
// in declaration order. An empty components section yields an empty
// index.
func BuildIndex(schemas []model.NamedSchema) Index {
	idx := make(Index, len(schemas))
	for _, ns := range schemas {
		if ns.Schema == nil {
			continue
		}
		idx[CanonicalJSON(ns.Schema)] = ns.Name
	}
	return idx
}
