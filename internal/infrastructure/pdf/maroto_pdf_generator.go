// Package pdf implementa la hoja imprimible del plan MRP de un pedido.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Plan de Requerimientos  │  N° Pedido + Cliente     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Componente | Requerido | Inventario |      │
//	│         Neto | A pedir | Fecha pedido | Entrega | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total estimado + fecha de generación                  │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/spra-api/internal/application/usecase"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorUrgent  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.PlanPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.PlanPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePlanSheet genera la hoja del plan y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePlanSheet(orderNumber, customerName string, rows []*repository.PlanRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de Requerimientos de Materiales", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(orderNumber, customerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número de pedido + cliente (der).
func headerRow(orderNumber, customerName string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("PLAN DE REQUERIMIENTOS DE MATERIALES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SPRA · Planificación de producción", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Pedido "+orderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Cliente: "+customerName, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de componentes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 1, align.Left),
		h("Componente", 2, align.Left),
		h("Requerido", 1, align.Right),
		h("Inventario", 1, align.Right),
		h("Neto", 1, align.Right),
		h("A pedir", 1, align.Right),
		h("Fecha pedido", 1, align.Center),
		h("Entrega", 1, align.Center),
		h("Proveedor", 1, align.Left),
		h("Costo est.", 1, align.Right),
		h("Estado", 1, align.Center),
	)
}

// tableDetailRows: una fila por componente del plan. Las líneas urgentes van en rojo.
func tableDetailRows(rows []*repository.PlanRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		statusColor := colorGray
		if r.Status == "urgent" {
			statusColor = colorUrgent
		}
		cell := func(value string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(value, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(r.ComponentCode, 1, align.Left),
			cell(r.ComponentName, 2, align.Left),
			cell(r.TotalRequired.StringFixed(1), 1, align.Right),
			cell(r.CurrentInventory.StringFixed(1), 1, align.Right),
			cell(r.NetRequirement.StringFixed(1), 1, align.Right),
			cell(r.OrderQuantity.StringFixed(1), 1, align.Right),
			cell(formatDate(r.OrderDate), 1, align.Center),
			cell(formatDate(r.ExpectedDelivery), 1, align.Center),
			cell(r.SupplierName, 1, align.Left),
			cell("$"+r.EstimatedCost.StringFixed(0), 1, align.Right),
			col.New(1).Add(text.New(r.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: statusColor, Top: 1,
			})),
		))
	}
	return result
}

// footerRow: total estimado + fecha de generación.
func footerRow(rows []*repository.PlanRow) core.Row {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.EstimatedCost)
	}
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("COSTO TOTAL ESTIMADO: $"+total.StringFixed(0), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/2006")
}
