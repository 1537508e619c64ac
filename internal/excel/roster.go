package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/baladia/fuel-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// VehicleRoster renders the full vehicle list as a workbook. Rows are
// expected pre-enriched; blank cells stand in for unresolved labels.
func (g *Generator) VehicleRoster(vehicles []model.Vehicle) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Vehicles"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Vehicle Roster")
	set("A2", "Generated")
	set("B2", time.Now().UTC().Format("2006-01-02 15:04"))
	set("A3", "Total vehicles")
	set("B3", len(vehicles))

	headerRow := 5
	headers := []string{
		"Vehicle #",
		"Plate #",
		"Model",
		"Year",
		"Fuel Type",
		"Vehicle Type",
		"Status",
		"Station",
		"Odometer",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, header)
	}

	for i := range vehicles {
		v := &vehicles[i]
		row := headerRow + 1 + i
		set(fmt.Sprintf("A%d", row), v.VehicleNum)
		set(fmt.Sprintf("B%d", row), deref(v.PlateNum))
		set(fmt.Sprintf("C%d", row), deref(v.Model))
		if v.ModelYear != nil {
			set(fmt.Sprintf("D%d", row), *v.ModelYear)
		}
		set(fmt.Sprintf("E%d", row), deref(v.FuelTypeName))
		set(fmt.Sprintf("F%d", row), deref(v.TypeName))
		set(fmt.Sprintf("G%d", row), deref(v.StatusName))
		set(fmt.Sprintf("H%d", row), deref(v.AssignedStationName))
		if v.Odometer != nil {
			set(fmt.Sprintf("I%d", row), *v.Odometer)
		}
	}

	_ = file.SetColWidth(sheet, "A", "B", 16)
	_ = file.SetColWidth(sheet, "C", "C", 24)
	_ = file.SetColWidth(sheet, "D", "D", 8)
	_ = file.SetColWidth(sheet, "E", "H", 18)
	_ = file.SetColWidth(sheet, "I", "I", 12)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
