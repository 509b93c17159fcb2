// Command quakequery runs a single catalog query and prints the flattened
// table to stdout as JSON or CSV.
//
// Usage:
//
//	go run ./cmd/quakequery -mode magnitude -min-magnitude 4.5 -max-gap 60
//	go run ./cmd/quakequery -mode location -latitude 61.2 -longitude -149.9 -radius-km 250 -format csv
//	go run ./cmd/quakequery -mode magnitude -summary
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-data-service/internal/adapter/usgs"
	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
	"github.com/couchcryptid/quake-data-service/internal/query"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "quakequery:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		mode     = flag.String("mode", "magnitude", "query mode: magnitude or location")
		baseURL  = flag.String("base-url", "https://earthquake.usgs.gov/fdsnws/event/1/query", "catalog endpoint")
		timeout  = flag.Duration("timeout", 10*time.Second, "request timeout")
		format   = flag.String("format", "json", "output format: json or csv")
		summary  = flag.Bool("summary", false, "print summary statistics instead of rows")
		minMag   = flag.Float64("min-magnitude", 0, "minimum magnitude")
		maxMag   = flag.Float64("max-magnitude", 10, "maximum magnitude")
		maxGap   = flag.Float64("max-gap", 90, "maximum azimuthal gap in degrees")
		lat      = flag.Float64("latitude", 0, "center latitude (location mode)")
		lon      = flag.Float64("longitude", 0, "center longitude (location mode)")
		radiusKM = flag.Float64("radius-km", 100, "search radius in km (location mode)")
		evType   = flag.String("event-type", domain.DefaultEventType, "catalog event type")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()
	client := usgs.NewClient(*baseURL, *timeout, metrics, logger)
	svc := query.NewService(client, logger, metrics)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+5*time.Second)
	defer cancel()

	var table domain.ResultTable
	var err error
	withGeo := false

	switch *mode {
	case "magnitude":
		q := domain.MagnitudeQuery{MinMagnitude: *minMag, MaxMagnitude: *maxMag, MaxGap: *maxGap, EventType: *evType}
		table, err = svc.FetchByMagnitude(ctx, q)
	case "location":
		q := domain.LocationQuery{Latitude: *lat, Longitude: *lon, MaxRadiusKM: *radiusKM, EventType: *evType}
		table, err = svc.FetchByLocation(ctx, q)
		withGeo = true
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		return err
	}

	if *summary {
		return writeJSON(domain.Summarize(table))
	}

	switch *format {
	case "json":
		return writeJSON(table)
	case "csv":
		return writeCSV(table, withGeo)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(table domain.ResultTable, withGeo bool) error {
	w := csv.NewWriter(os.Stdout)

	header := []string{
		"magnitude", "place", "time", "significance", "network", "code",
		"station_distance", "num_of_stations", "rms", "gap",
		"measurement_method", "event_type",
	}
	if withGeo {
		header = append(header, "longitude", "latitude", "depth")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range table.Rows {
		rec := []string{
			fmtFloat(row.Magnitude), fmtString(row.Place), fmtInt64(row.Time),
			fmtInt(row.Significance), fmtString(row.Network), fmtString(row.Code),
			fmtFloat(row.StationDistance), fmtInt(row.NumOfStations),
			fmtFloat(row.RMS), fmtFloat(row.Gap),
			fmtString(row.MeasurementMethod), fmtString(row.EventType),
		}
		if withGeo {
			rec = append(rec, fmtFloat(row.Longitude), fmtFloat(row.Latitude), fmtFloat(row.Depth))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func fmtInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func fmtString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
