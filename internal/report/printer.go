package report

import (
	"fmt"
	"io"

	"github.com/oasmap/oasmap/internal/model"
)

// WriteUsageMap renders the ordered usage sequence, one line per
// record. Absent optional fields print as fixed placeholders; the
// parameter and status fields print empty when not applicable.
func WriteUsageMap(w io.Writer, usages []model.SchemaUsage) {
	fmt.Fprintf(w, "\nSchema Usage Map:\n")
	for _, u := range usages {
		fmt.Fprintf(w, "Schema: %s, Ref: %s, Usage: %s, Path: %s, Operation: %s, Parameter: %s, Status: %s\n",
			orElse(u.SchemaName, "<anonymous>"),
			orElse(u.RefPath, "<inline>"),
			orElse(string(u.Kind), "<unknown>"),
			orElse(u.Path, "<unknown>"),
			orElse(u.OperationID, "<unknown>"),
			u.ParameterName,
			u.StatusCode,
		)
	}
}

func orElse(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
