package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Engine rasterizes the fixed invoice layout into PDF bytes. Implementations
// must either return the complete document or an error, never partial output.
type Engine interface {
	Render(data InvoiceData) ([]byte, error)
}

// MarotoEngine composes the layout with maroto and returns its output bytes
// unmodified.
type MarotoEngine struct{}

func NewMarotoEngine() *MarotoEngine { return &MarotoEngine{} }

func (e *MarotoEngine) Render(data InvoiceData) ([]byte, error) {
	m := maroto.New()

	// Header / brand block
	m.AddRow(12, text.NewCol(12, "INVOICE GENERATOR", props.Text{Size: 18, Style: fontstyle.Bold}))
	m.AddRow(8, text.NewCol(12, "Professional Invoice Services", props.Text{Size: 10}))
	m.AddRow(6)

	// Invoice metadata (left) and client metadata (right)
	m.AddRow(7,
		text.NewCol(6, "Invoice Details", props.Text{Size: 12, Style: fontstyle.Bold}),
		text.NewCol(6, "Client Information", props.Text{Size: 12, Style: fontstyle.Bold}),
	)
	m.AddRow(6,
		text.NewCol(6, "Invoice Number: "+data.InvoiceNumber, props.Text{Size: 10}),
		text.NewCol(6, "Company: "+data.ClientCompany, props.Text{Size: 10}),
	)
	m.AddRow(6,
		text.NewCol(6, "Date: "+data.Date, props.Text{Size: 10}),
		text.NewCol(6, "Contact: "+data.ClientName, props.Text{Size: 10}),
	)
	m.AddRow(6,
		text.NewCol(6, "Due Date: "+data.DueDate, props.Text{Size: 10}),
		text.NewCol(6, "Email: "+data.ClientEmail, props.Text{Size: 10}),
	)
	m.AddRow(6)

	// Line-item table
	m.AddRow(8,
		text.NewCol(6, "Product", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(2, "Qty", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, it := range data.Items {
		m.AddRow(6,
			text.NewCol(6, it.Name, props.Text{Size: 10}),
			text.NewCol(2, strconv.Itoa(it.Quantity), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, it.Rate, props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, it.Total, props.Text{Size: 10, Align: align.Right}),
		)
	}
	m.AddRow(6)

	// Totals block
	m.AddRow(6, text.NewCol(12, "Subtotal: "+data.Subtotal, props.Text{Size: 10, Align: align.Right}))
	m.AddRow(6, text.NewCol(12, "GST (18%): "+data.TotalTax, props.Text{Size: 10, Align: align.Right}))
	m.AddRow(8, text.NewCol(12, "Total Amount: "+data.TotalAmount, props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Right}))

	doc, err := m.Generate()
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("generate pdf: %w", err)}
	}
	return doc.GetBytes(), nil
}
