package report

import (
	"io"

	"github.com/nao1215/markdown"
)

// writeMarkdown emits the dataset as a Markdown table.
func writeMarkdown(w io.Writer, ds *Dataset) error {
	return markdown.NewMarkdown(w).
		Table(markdown.TableSet{
			Header: ds.Columns,
			Rows:   ds.Rows,
		}).
		Build()
}
