// Package report arma los reportes del tablero: actividad por departamento y
// stock corriente, con exportación a PDF.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jcastellr/almacen-api/internal/domain/repository"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// PDFGenerator convierte las filas del reporte de stock corriente en un PDF.
type PDFGenerator interface {
	RunningStockPDF(ctx context.Context, rows []repository.RunningStockReportRow) ([]byte, error)
}

// UseCase casos de uso de reportes.
type UseCase struct {
	reports   repository.ReportRepository
	generator PDFGenerator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(reports repository.ReportRepository, generator PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{reports: reports, generator: generator, log: log}
}

// DepartmentActivity devuelve el total ajustado y el total ordenado por departamento.
func (uc *UseCase) DepartmentActivity(ctx context.Context) ([]repository.DepartmentActivityRow, error) {
	return uc.reports.DepartmentActivity(ctx)
}

// RunningStock devuelve el estado corriente de todos los artículos con inventario.
func (uc *UseCase) RunningStock(ctx context.Context) ([]repository.RunningStockReportRow, error) {
	return uc.reports.RunningStockReport(ctx)
}

// RunningStockPDF genera el reporte de stock corriente en PDF y el nombre de
// archivo sugerido.
func (uc *UseCase) RunningStockPDF(ctx context.Context) ([]byte, string, error) {
	rows, err := uc.reports.RunningStockReport(ctx)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.RunningStockPDF(ctx, rows)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF del reporte: %w", err)
	}
	filename := fmt.Sprintf("stock_corriente_%s.pdf", time.Now().Format("2006-01-02"))
	uc.log.Info().Int("rows", len(rows)).Str("filename", filename).Msg("reporte PDF generado")
	return pdf, filename, nil
}
