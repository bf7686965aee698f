// Package pdf implementa el reporte imprimible de valoración de inventario.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ValuationReportGenerator genera el PDF de valoración usando Maroto v2.
type ValuationReportGenerator struct{}

// NewValuationReportGenerator construye el generador.
func NewValuationReportGenerator() *ValuationReportGenerator { return &ValuationReportGenerator{} }

// Generate produce el reporte: una fila por producto (SKU, nombre, stock,
// precio, valor) y el total al pie. Retorna los bytes del PDF.
func (g *ValuationReportGenerator) Generate(appName string, products []*entity.Product, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Valoración de Inventario", true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	total := decimal.Zero
	for _, p := range products {
		value := p.Price.Mul(decimal.NewFromInt(p.Quantity))
		total = total.Add(value)
		m.AddRows(productRow(p, value))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(products), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Valoración de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(appName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorGray,
			}),
			text.New("Modo: precio actual", props.Text{
				Size: 8, Top: 7, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(4).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Stock", headerRight)),
		col.New(2).Add(text.New("Precio", headerRight)),
		col.New(2).Add(text.New("Valor", headerRight)),
	)
}

func productRow(p *entity.Product, value decimal.Decimal) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(5).Add(
		col.New(2).Add(text.New(p.SKU, cell)),
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), cellRight)),
		col.New(2).Add(text.New(p.Price.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(value.StringFixed(2), cellRight)),
	)
}

func totalRow(totalProducts int, total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("%d productos", totalProducts), props.Text{
				Size: 9, Top: 1, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL: "+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 1, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
