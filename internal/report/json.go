package report

import (
	"encoding/json"
	"io"
)

// writeJSON emits the dataset as an indented JSON document. Encoding the
// Dataset itself keeps the column order explicit.
func writeJSON(w io.Writer, ds *Dataset) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ds)
}
