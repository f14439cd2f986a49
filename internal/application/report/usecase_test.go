package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/almacen-api/internal/application/report"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

type memReports struct {
	activity []repository.DepartmentActivityRow
	running  []repository.RunningStockReportRow
	err      error
}

func (m *memReports) DepartmentActivity(context.Context) ([]repository.DepartmentActivityRow, error) {
	return m.activity, m.err
}

func (m *memReports) RunningStockReport(context.Context) ([]repository.RunningStockReportRow, error) {
	return m.running, m.err
}

type fakeGenerator struct {
	got []repository.RunningStockReportRow
	err error
}

func (g *fakeGenerator) RunningStockPDF(_ context.Context, rows []repository.RunningStockReportRow) ([]byte, error) {
	g.got = rows
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.7 contenido"), nil
}

func TestRunningStockPDF(t *testing.T) {
	rows := []repository.RunningStockReportRow{
		{Barcode: "BC-500", Code: "SKF-1", RemainingQuantity: 3, Status: "re_order", NetValue: decimal.NewFromInt(15)},
		{Barcode: "BC-501", Code: "SKF-2", RemainingQuantity: 40, Status: "available", NetValue: decimal.NewFromInt(200)},
	}
	gen := &fakeGenerator{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := report.NewUseCase(&memReports{running: rows}, gen, log)

	pdf, filename, err := uc.RunningStockPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Len(t, gen.got, 2)
	assert.Equal(t, "stock_corriente_"+time.Now().Format("2006-01-02")+".pdf", filename)
}

func TestRunningStockPDF_FallaElGenerador(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("fuente no disponible")}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := report.NewUseCase(&memReports{}, gen, log)

	_, _, err := uc.RunningStockPDF(context.Background())
	require.Error(t, err)
}

func TestDepartmentActivity(t *testing.T) {
	rows := []repository.DepartmentActivityRow{
		{DepartmentID: 1, DepartmentName: "mantenimiento", AdjustmentQty: 12, OrderQty: 40},
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := report.NewUseCase(&memReports{activity: rows}, &fakeGenerator{}, log)

	got, err := uc.DepartmentActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mantenimiento", got[0].DepartmentName)
}
