package pdf

import (
	"bytes"
	_ "embed"
	"html/template"
)

// The invoice layout is a fixed template; only the data varies.
//
//go:embed invoice.html
var invoiceTemplate string

var invoiceTpl = template.Must(template.New("invoice").Parse(invoiceTemplate))

// HTML populates the fixed invoice markup. The output depends only on data, so
// rendering the same invoice twice yields identical bytes.
func HTML(data InvoiceData) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTpl.Execute(&buf, data); err != nil {
		return "", &RenderError{Err: err}
	}
	return buf.String(), nil
}
