package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/baladia/fuel-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	if len(dejaVuSansFont) == 0 {
		return nil, fmt.Errorf("font data is empty")
	}
	return &Generator{fontName: "DejaVuSans"}, nil
}

// VehicleRoster renders the vehicle list as a landscape A4 table.
func (g *Generator) VehicleRoster(vehicles []model.Vehicle) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.AddUTF8FontFromBytes(g.fontName, "", dejaVuSansFont)
	pdf.AddUTF8FontFromBytes(g.fontName, "B", dejaVuSansFont)

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Vehicle Roster", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s, %d vehicles",
		time.Now().UTC().Format("2006-01-02 15:04"), len(vehicles)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Vehicle #", "Plate #", "Model", "Year", "Fuel Type", "Type", "Status", "Station", "Odometer"}
	widths := []float64{30, 30, 42, 14, 30, 32, 30, 42, 22}

	drawRow := func(cells []string, header bool) {
		style := ""
		fill := false
		if header {
			style = "B"
			fill = true
			pdf.SetFillColor(230, 230, 230)
		}
		pdf.SetFont(g.fontName, style, 9)
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	drawRow(headers, true)
	for i := range vehicles {
		v := &vehicles[i]
		year := ""
		if v.ModelYear != nil {
			year = strconv.Itoa(*v.ModelYear)
		}
		odometer := ""
		if v.Odometer != nil {
			odometer = strconv.FormatFloat(*v.Odometer, 'f', 0, 64)
		}
		drawRow([]string{
			v.VehicleNum,
			stringOrEmpty(v.PlateNum),
			stringOrEmpty(v.Model),
			year,
			stringOrEmpty(v.FuelTypeName),
			stringOrEmpty(v.TypeName),
			stringOrEmpty(v.StatusName),
			stringOrEmpty(v.AssignedStationName),
			odometer,
		}, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
