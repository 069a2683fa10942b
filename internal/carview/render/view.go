package render

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"

	"github.com/autopeer-io/carview/internal/carview/model"
)

// View is the display form of a car record. Every field is ready to print.
type View struct {
	Header      string
	OutdoorTemp string
	IndoorTemp  string

	// HasGPS is false when the record had no position; Latitude and
	// Longitude are empty then.
	HasGPS    bool
	Latitude  string
	Longitude string

	Owner       string
	LastService string
	LastUpdated string
}

// NewView formats rec for display. It returns nil when there is no record,
// meaning no car block is shown.
func NewView(rec *model.CarRecord) *View {
	if rec == nil {
		return nil
	}

	v := &View{
		Header:      rec.LicensePlate,
		OutdoorTemp: Temperature(rec.OutdoorTemp),
		IndoorTemp:  Temperature(rec.IndoorTemp),
		Owner:       rec.Owner,
		LastService: rec.LastService,
		LastUpdated: rec.LastUpdated,
	}

	if rec.HasGPS() {
		v.HasGPS = true
		v.Latitude = Coordinate(rec.GPS.Lat)
		v.Longitude = Coordinate(rec.GPS.Lng)
	}

	return v
}

// Temperature renders degrees Celsius with one decimal place.
func Temperature(deg float64) string {
	return fmt.Sprintf("%.1f°C", deg)
}

// Coordinate renders a latitude or longitude with six decimal places.
func Coordinate(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// Print writes v as a two-column table. A nil view prints nothing.
func Print(w io.Writer, v *View) error {
	if v == nil {
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Separator = "  "

	table.AddRow("CAR:", v.Header)
	table.AddRow("Outdoor temperature:", v.OutdoorTemp)
	table.AddRow("Indoor temperature:", v.IndoorTemp)
	if v.HasGPS {
		table.AddRow("Latitude:", v.Latitude)
		table.AddRow("Longitude:", v.Longitude)
	}
	table.AddRow("Owner:", v.Owner)
	table.AddRow("Last service:", v.LastService)
	table.AddRow("Last updated:", v.LastUpdated)

	_, err := fmt.Fprintln(w, table)
	return err
}
