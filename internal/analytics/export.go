package analytics

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cleansuite/internal/models"
)

// Exporter writes an analytics report workbook sheet by sheet.
type Exporter struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

// NewExporter creates an empty workbook.
func NewExporter() *Exporter {
	return &Exporter{file: excelize.NewFile()}
}

func (e *Exporter) addSheet(name string) error {
	// Excel caps sheet names at 31 chars.
	if len(name) > 31 {
		name = name[:31]
	}

	if e.currentSheet == "" {
		e.file.SetSheetName("Sheet1", name)
	} else {
		if _, err := e.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	e.currentSheet = name
	e.currentRow = 1
	return nil
}

func (e *Exporter) writeHeader(columns []string) error {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	if err := e.writeRow(row); err != nil {
		return err
	}

	style, err := e.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, e.currentRow-1)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), e.currentRow-1)
		_ = e.file.SetCellStyle(e.currentSheet, startCell, endCell, style)
	}
	return nil
}

func (e *Exporter) writeRow(row []interface{}) error {
	if e.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}
	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, e.currentRow)
		if err != nil {
			return err
		}
		if err := e.file.SetCellValue(e.currentSheet, cell, val); err != nil {
			return err
		}
	}
	e.currentRow++
	return nil
}

// WriteReport fills the workbook with the report figures and the raw
// booking rows the figures were computed from.
func (e *Exporter) WriteReport(report Report, bookings []models.Booking) error {
	if err := e.addSheet("Overview"); err != nil {
		return err
	}
	if err := e.writeHeader([]string{"Metric", "Value"}); err != nil {
		return err
	}
	overviewRows := [][]interface{}{
		{"Total Revenue", report.Overview.TotalRevenue},
		{"Total Bookings", report.Overview.TotalBookings},
		{"Unique Customers", report.Overview.UniqueCustomers},
		{"Retention Rate (%)", report.Overview.RetentionRate},
	}
	for _, row := range overviewRows {
		if err := e.writeRow(row); err != nil {
			return err
		}
	}

	if err := e.addSheet("Monthly Revenue"); err != nil {
		return err
	}
	if err := e.writeHeader([]string{"Month", "Revenue"}); err != nil {
		return err
	}
	for _, m := range report.MonthlyRevenue {
		if err := e.writeRow([]interface{}{m.Month, m.Revenue}); err != nil {
			return err
		}
	}

	if err := e.addSheet("Services"); err != nil {
		return err
	}
	if err := e.writeHeader([]string{"Service", "Bookings"}); err != nil {
		return err
	}
	for _, s := range report.ServiceStats {
		if err := e.writeRow([]interface{}{s.Name, s.Count}); err != nil {
			return err
		}
	}

	if err := e.addSheet("Staff"); err != nil {
		return err
	}
	if err := e.writeHeader([]string{"Name", "Role", "Revenue", "Jobs Completed"}); err != nil {
		return err
	}
	for _, p := range report.StaffPerformance {
		if err := e.writeRow([]interface{}{p.Name, p.Role, p.Revenue, p.JobsCompleted}); err != nil {
			return err
		}
	}

	if err := e.addSheet("Bookings"); err != nil {
		return err
	}
	if err := e.writeHeader([]string{
		"ID", "Service", "Date", "Time", "Customer", "Email", "Assigned To",
		"Status", "Payment Status", "Amount", "Method",
	}); err != nil {
		return err
	}
	for i := range bookings {
		b := &bookings[i]
		if err := e.writeRow([]interface{}{
			b.ID, b.Service, b.Date, b.Time, b.Name, b.Email, b.AssignedTo,
			b.Status, b.Payment.Status, b.Payment.Amount, b.Payment.Method,
		}); err != nil {
			return err
		}
	}

	return nil
}

// Save writes the workbook to w.
func (e *Exporter) Save(w io.Writer) error {
	return e.file.Write(w)
}

// Close releases workbook resources.
func (e *Exporter) Close() error {
	return e.file.Close()
}
