package params

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// lineCount is the number of positional lines the parameter file must carry.
// Surplus lines are ignored; fewer is an error.
const lineCount = 45

// Coordinate is a latitude/longitude pair decoded from a "lat,lon" line.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Parameters holds every scalar run parameter of one simulation job, in the
// order the file defines them.
type Parameters struct {
	// Landscape and weather inputs (lines 1-6).
	InputFolder    string
	LUTFile        string
	ProjectionFile string
	ElevationFile  string
	FuelMapFile    string
	WeatherFile    string

	// Ignition and scenario window (lines 7-10).
	IgnitionTime     time.Time
	IgnitionLocation Coordinate
	ScenarioStart    time.Time
	ScenarioEnd      time.Time

	// Weather station metadata (lines 11-13).
	StationName      string
	StationElevation float64
	StationLocation  Coordinate

	// Weather model seed values (lines 14-19).
	StartingFFMC   float64
	StartingDMC    float64
	StartingDC     float64
	StartingPrecip float64
	HFFMCValue     float64
	HFFMCHour      int

	// Weather stream bounds (lines 20-21).
	StreamStart time.Time
	StreamEnd   time.Time

	// Burning condition thresholds (lines 22-25).
	BurningMinFWI float64
	BurningMinISI float64
	BurningMaxRH  float64
	BurningMaxWS  float64

	// Fire growth and resolution controls (lines 26-33).
	MaxAccelStep        float64
	DistanceResolution  float64
	PerimeterResolution float64
	MinSpreadingROS     float64
	StopAtGridEnd       bool
	Breaching           bool
	DynamicThreshold    bool
	Spotting            bool

	// Probabilistic ignition deltas (lines 34-36).
	IgnitionDeltaX    float64
	IgnitionDeltaY    float64
	IgnitionDeltaTime float64

	// FBP options (lines 37-38).
	TerrainEffect bool
	WindEffect    bool

	// FMC options (lines 39-40).
	PercentOverride float64
	NodataElevation float64

	// FWI options (lines 41-45).
	SpatialInterp       bool
	FromSpatialWeather  bool
	HistoryOnFWI        bool
	BurningConditionsOn bool
	TemporalInterp      bool
}

// Load reads and decodes the parameter file at path.
func Load(path string) (*Parameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}
	p, err := Decode(SplitLines(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("parameter file %s: %w", path, err)
	}
	return p, nil
}

// SplitLines breaks raw file content into parameter lines, stripping a
// carriage return left by CRLF files. Line content is otherwise untouched.
func SplitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Decode reads the 45 positional parameter lines into a typed Parameters
// value. Any unparsable line is a fatal error naming the 1-based line, the
// field it carries, and the raw text.
func Decode(lines []string) (*Parameters, error) {
	if len(lines) < lineCount {
		return nil, fmt.Errorf("expected %d parameter lines, got %d", lineCount, len(lines))
	}

	d := &decoder{lines: lines}
	p := &Parameters{
		InputFolder:    d.text("input folder"),
		LUTFile:        d.text("fuel lookup file"),
		ProjectionFile: d.text("projection file"),
		ElevationFile:  d.text("elevation file"),
		FuelMapFile:    d.text("fuel map file"),
		WeatherFile:    d.text("weather file"),

		IgnitionTime:     d.instant("ignition time"),
		IgnitionLocation: d.coordinate("ignition location"),
		ScenarioStart:    d.instant("scenario start"),
		ScenarioEnd:      d.instant("scenario end"),

		StationName:      d.text("station name"),
		StationElevation: d.float("station elevation"),
		StationLocation:  d.coordinate("station location"),

		StartingFFMC:   d.float("starting ffmc"),
		StartingDMC:    d.float("starting dmc"),
		StartingDC:     d.float("starting dc"),
		StartingPrecip: d.float("starting precipitation"),
		HFFMCValue:     d.float("hourly ffmc value"),
		HFFMCHour:      d.integer("hourly ffmc hour"),

		StreamStart: d.instant("stream start"),
		StreamEnd:   d.instant("stream end"),

		BurningMinFWI: d.float("burning min fwi"),
		BurningMinISI: d.float("burning min isi"),
		BurningMaxRH:  d.float("burning max rh"),
		BurningMaxWS:  d.float("burning max wind speed"),

		MaxAccelStep:        d.float("max acceleration timestep"),
		DistanceResolution:  d.float("distance resolution"),
		PerimeterResolution: d.float("perimeter resolution"),
		MinSpreadingROS:     d.float("min spreading ros"),
		StopAtGridEnd:       d.boolean("stop at grid end"),
		Breaching:           d.boolean("breaching"),
		DynamicThreshold:    d.boolean("dynamic spatial threshold"),
		Spotting:            d.boolean("spotting"),

		IgnitionDeltaX:    d.float("ignition delta x"),
		IgnitionDeltaY:    d.float("ignition delta y"),
		IgnitionDeltaTime: d.float("ignition delta time"),

		TerrainEffect: d.boolean("fbp terrain effect"),
		WindEffect:    d.boolean("fbp wind effect"),

		PercentOverride: d.float("fmc percent override"),
		NodataElevation: d.float("fmc nodata elevation"),

		SpatialInterp:       d.boolean("fwi spatial interpolation"),
		FromSpatialWeather:  d.boolean("fwi from spatial weather"),
		HistoryOnFWI:        d.boolean("fwi history on effected fwi"),
		BurningConditionsOn: d.boolean("burning conditions on"),
		TemporalInterp:      d.boolean("fwi temporal interpolation"),
	}

	if d.err != nil {
		return nil, d.err
	}
	return p, nil
}

// decoder walks the line sequence and keeps the first parse failure. Once an
// error is recorded every later read returns a zero value, so Decode can run
// all 45 reads unconditionally and report the earliest bad line.
type decoder struct {
	lines []string
	pos   int
	err   error
}

// next returns the raw text of the upcoming line and advances the cursor.
func (d *decoder) next() string {
	raw := d.lines[d.pos]
	d.pos++
	return raw
}

func (d *decoder) fail(field, raw string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("line %d (%s): invalid value %q: %w", d.pos, field, raw, err)
	}
}

func (d *decoder) text(field string) string {
	if d.err != nil {
		return ""
	}
	return d.next()
}

func (d *decoder) float(field string) float64 {
	if d.err != nil {
		return 0
	}
	raw := d.next()
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		d.fail(field, raw, err)
		return 0
	}
	return v
}

func (d *decoder) integer(field string) int {
	if d.err != nil {
		return 0
	}
	raw := d.next()
	v, err := strconv.Atoi(raw)
	if err != nil {
		d.fail(field, raw, err)
		return 0
	}
	return v
}

// boolean decodes by raw-text truthiness: any non-empty line is true, an
// empty line is false. The literal text "false" therefore decodes to true.
// This mirrors the long-standing behavior of the parameter format and is
// pinned by a test; changing it is a contract change, not a cleanup.
func (d *decoder) boolean(field string) bool {
	if d.err != nil {
		return false
	}
	return d.next() != ""
}

func (d *decoder) instant(field string) time.Time {
	if d.err != nil {
		return time.Time{}
	}
	raw := d.next()
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		d.fail(field, raw, err)
		return time.Time{}
	}
	return ts
}

// coordinate decodes a "lat,lon" pair. The first two comma-separated
// components are used and any surplus is ignored; fewer than two is an
// error.
func (d *decoder) coordinate(field string) Coordinate {
	if d.err != nil {
		return Coordinate{}
	}
	raw := d.next()
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		d.fail(field, raw, errors.New("expected two comma-separated components"))
		return Coordinate{}
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		d.fail(field, raw, err)
		return Coordinate{}
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		d.fail(field, raw, err)
		return Coordinate{}
	}
	return Coordinate{Lat: lat, Lon: lon}
}
