// Package pdf implementa la generación del reporte de stock corriente.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Barras | Especificación | Ubicación |       │
//	│         Entradas | Salidas | Ajustes | Remanente | Estado |  │
//	│         Valor neto                                           │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	appreport "github.com/jcastellr/almacen-api/internal/application/report"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appreport.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// RunningStockPDF genera el reporte de stock corriente y devuelve sus bytes.
func (g *MarotoReportGenerator) RunningStockPDF(
	_ context.Context,
	rows []repository.RunningStockReportRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Stock Corriente", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de Stock Corriente", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	headers := []struct {
		label string
		size  int
	}{
		{"Código", 1},
		{"Barras", 1},
		{"Especificación", 3},
		{"Ubicación", 1},
		{"Entradas", 1},
		{"Salidas", 1},
		{"Ajustes", 1},
		{"Remanente", 1},
		{"Estado", 1},
		{"Valor neto", 1},
	}

	r := row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	for _, h := range headers {
		r.Add(col.New(h.size).Add(
			text.New(h.label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1,
			}),
		))
	}
	return r
}

func tableDetailRow(d repository.RunningStockReportRow) core.Row {
	statusColor := colorGray
	if d.Status == string(entity.StatusReOrder) {
		statusColor = colorAlert
	}

	cell := props.Text{Size: 8, Top: 1}

	return row.New(6).Add(
		col.New(1).Add(text.New(d.Code, cell)),
		col.New(1).Add(text.New(d.Barcode, cell)),
		col.New(3).Add(text.New(d.Specification, cell)),
		col.New(1).Add(text.New(d.Location, cell)),
		col.New(1).Add(text.New(strconv.Itoa(d.StockQuantity), props.Text{Size: 8, Top: 1, Align: align.Right})),
		col.New(1).Add(text.New(strconv.Itoa(d.OutQuantity), props.Text{Size: 8, Top: 1, Align: align.Right})),
		col.New(1).Add(text.New(strconv.Itoa(d.AdjustmentQty), props.Text{Size: 8, Top: 1, Align: align.Right})),
		col.New(1).Add(text.New(strconv.Itoa(d.RemainingQuantity), props.Text{Size: 8, Top: 1, Align: align.Right})),
		col.New(1).Add(text.New(d.Status, props.Text{Size: 8, Top: 1, Color: statusColor})),
		col.New(1).Add(text.New(d.NetValue.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}
