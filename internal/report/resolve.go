package report

import "github.com/oasmap/oasmap/internal/model"

// Resolve returns the best-effort name of a schema occurrence. The
// second return is false when the occurrence is fully anonymous,
// which is a valid outcome, not a failure.
//
// Resolution order, first success wins:
//  1. an array is reported by its element's identity when the element
//     is a reference or carries a title
//  2. a direct reference with a titled target resolves to that title
//  3. a direct reference without a title resolves to the last segment
//     of the reference target
//  4. the occurrence's own title
//  5. structural probe of the component index via canonical JSON
func Resolve(s *model.Schema, idx Index) (string, bool) {
	if s == nil {
		return "", false
	}

	if s.IsArray() && s.Items != nil && (s.Items.IsReference() || s.Items.Title != "") {
		return Resolve(s.Items, idx)
	}

	if s.IsReference() {
		if s.Title != "" {
			return s.Title, true
		}
		if name := s.RefName(); name != "" {
			return name, true
		}
		return "", false
	}

	if s.Title != "" {
		return s.Title, true
	}

	if name, ok := idx[CanonicalJSON(s)]; ok {
		return name, true
	}

	return "", false
}
