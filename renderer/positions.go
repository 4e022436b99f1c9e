// Package renderer renders fifo reports as markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/asaladino/fifo"
	md "github.com/nao1215/markdown"
)

// PositionsMarkdown renders an open-positions report as a markdown
// document with one table row per security, in first-seen order.
func PositionsMarkdown(r *fifo.PositionsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Open Positions (%s)", r.Class))

	if len(r.Positions) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Positions))
	for _, p := range r.Positions {
		rows = append(rows, []string{
			p.Security,
			p.Quantity.String(),
			p.AverageCost.Format(r.Currency),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Security", "Quantity", "Average Cost"},
		Rows:   rows,
	})

	return doc.String()
}
