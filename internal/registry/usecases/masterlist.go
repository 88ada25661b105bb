package usecases

import (
	"fmt"
	"io"

	"profiling-server/internal/registry/domain"

	"github.com/xuri/excelize/v2"
)

const _masterlistSheet = "Households"

var MasterlistHeader = []string{
	"Household No.",
	"Head of Household",
	"Members",
	"Tenure",
	"Toilet Facility",
	"Water Source",
	"Monthly Income",
	"Address",
}

var _masterlistWidths = []float64{18, 32, 10, 12, 18, 18, 16, 60}

// Masterlist is an xlsx workbook with one household per row.
type Masterlist struct {
	file *excelize.File
	row  int
}

func NewMasterlist() (*Masterlist, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(_masterlistSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for col, header := range MasterlistHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(_masterlistSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("setting header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(_masterlistSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("styling header %s: %w", cell, err)
		}

		column, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(_masterlistSheet, column, column, _masterlistWidths[col]); err != nil {
			f.Close()
			return nil, fmt.Errorf("sizing column %s: %w", column, err)
		}
	}

	return &Masterlist{file: f, row: 1}, nil
}

func (m *Masterlist) Append(household domain.Household, headName string) error {
	m.row++
	cell, err := excelize.CoordinatesToCellName(1, m.row)
	if err != nil {
		return err
	}

	values := []any{
		household.Number,
		headName,
		household.MemberCount,
		string(household.Tenure),
		toiletLabel(household),
		household.WaterSource,
		household.MonthlyIncome.InexactFloat64(),
		household.Address.Line(),
	}
	if err := m.file.SetSheetRow(_masterlistSheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", m.row, err)
	}

	return nil
}

// Rows counts data rows, header excluded.
func (m *Masterlist) Rows() int {
	return m.row - 1
}

func (m *Masterlist) Write(w io.Writer) error {
	_, err := m.file.WriteTo(w)
	return err
}

func (m *Masterlist) Close() error {
	return m.file.Close()
}

func toiletLabel(household domain.Household) string {
	if household.ToiletFacility == domain.ToiletSanitary {
		return fmt.Sprintf("%s (%s)", household.ToiletFacility, household.SanitarySubtype)
	}
	return string(household.ToiletFacility)
}
