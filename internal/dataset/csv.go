package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/divyakansara2385/solarcalc/internal/season"
)

// Header is the fixed column order of a dataset export.
var Header = []string{
	"date", "irradiance", "humidity", "wind_speed",
	"ambient_temperature", "tilt_angle", "kwh", "season", "month", "day",
}

const dateLayout = "2006-01-02"

// Filename returns the download name for a season/year export.
func Filename(s season.Season, year int) string {
	return fmt.Sprintf("solar_energy_%s_%d.csv", s, year)
}

// WriteCSV writes the dataset with all floats at exactly 2 decimals, so a
// parse of the output reproduces the in-memory records.
func WriteCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range ds.Records {
		row := []string{
			r.Date.Format(dateLayout),
			f2(r.Irradiance),
			f2(r.Humidity),
			f2(r.WindSpeed),
			f2(r.AmbientTemperature),
			f2(r.TiltAngle),
			f2(r.KWH),
			string(r.Season),
			r.Month,
			strconv.Itoa(r.Day),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.Date.Format(dateLayout), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a dataset export back into records.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv")
	}
	if len(rows[0]) != len(Header) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(Header), len(rows[0]))
	}

	ds := &Dataset{}
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ds.Records = append(ds.Records, rec)
	}
	if len(ds.Records) > 0 {
		ds.Season = ds.Records[0].Season
		ds.Year = ds.Records[0].Date.Year()
	}
	return ds, nil
}

func parseRow(row []string) (Record, error) {
	var rec Record
	if len(row) != len(Header) {
		return rec, fmt.Errorf("expected %d fields, got %d", len(Header), len(row))
	}

	date, err := time.Parse(dateLayout, row[0])
	if err != nil {
		return rec, fmt.Errorf("date: %w", err)
	}
	rec.Date = date

	floats := []*float64{
		&rec.Irradiance, &rec.Humidity, &rec.WindSpeed,
		&rec.AmbientTemperature, &rec.TiltAngle, &rec.KWH,
	}
	for i, dst := range floats {
		v, err := strconv.ParseFloat(row[i+1], 64)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", Header[i+1], err)
		}
		*dst = v
	}

	s, err := season.Parse(row[7])
	if err != nil {
		return rec, err
	}
	rec.Season = s
	rec.Month = row[8]

	day, err := strconv.Atoi(row[9])
	if err != nil {
		return rec, fmt.Errorf("day: %w", err)
	}
	rec.Day = day
	return rec, nil
}

func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
