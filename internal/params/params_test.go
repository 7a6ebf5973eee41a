package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/embergrid/internal/testutil"
)

func mustInstant(t *testing.T, raw string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
	return ts
}

// TestDecode_FullFixture verifies that a complete, valid parameter file
// decodes into the expected typed values across every field group.
func TestDecode_FullFixture(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	lines := testutil.ParamLines()

	// --- Act ---
	p, err := Decode(lines)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "landscape", p.InputFolder)
	assert.Equal(t, "fuels.lut", p.LUTFile)
	assert.Equal(t, "zone14.prj", p.ProjectionFile)
	assert.Equal(t, "elevation.asc", p.ElevationFile)
	assert.Equal(t, "fuelmap.asc", p.FuelMapFile)
	assert.Equal(t, "weather.txt", p.WeatherFile)

	assert.True(t, p.IgnitionTime.Equal(mustInstant(t, "2001-10-16T13:00:00-05:00")))
	assert.Equal(t, Coordinate{Lat: 51.6542, Lon: -115.3617}, p.IgnitionLocation)
	assert.True(t, p.ScenarioStart.Equal(mustInstant(t, "2001-10-16T00:00:00-05:00")))
	assert.True(t, p.ScenarioEnd.Equal(mustInstant(t, "2001-10-17T22:00:00-05:00")))

	assert.Equal(t, "HINSHAW", p.StationName)
	assert.Equal(t, 1342.0, p.StationElevation)
	assert.Equal(t, Coordinate{Lat: 51.65, Lon: -115.37}, p.StationLocation)

	assert.Equal(t, 85.0, p.StartingFFMC)
	assert.Equal(t, 25.0, p.StartingDMC)
	assert.Equal(t, 200.0, p.StartingDC)
	assert.Equal(t, 0.0, p.StartingPrecip)
	assert.Equal(t, 88.0, p.HFFMCValue)
	assert.Equal(t, 13, p.HFFMCHour)

	assert.True(t, p.StreamStart.Equal(mustInstant(t, "2001-10-16T00:00:00-05:00")))
	assert.True(t, p.StreamEnd.Equal(mustInstant(t, "2001-10-17T22:00:00-05:00")))

	assert.Equal(t, 19.0, p.BurningMinFWI)
	assert.Equal(t, 8.0, p.BurningMinISI)
	assert.Equal(t, 55.0, p.BurningMaxRH)
	assert.Equal(t, 25.0, p.BurningMaxWS)

	assert.Equal(t, 2.0, p.MaxAccelStep)
	assert.Equal(t, 1.0, p.DistanceResolution)
	assert.Equal(t, 1.0, p.PerimeterResolution)
	assert.Equal(t, 1.0, p.MinSpreadingROS)
	assert.True(t, p.StopAtGridEnd)
	assert.True(t, p.Breaching)
	assert.False(t, p.DynamicThreshold)
	assert.False(t, p.Spotting)

	assert.Equal(t, 1.5, p.IgnitionDeltaX)
	assert.Equal(t, 1.5, p.IgnitionDeltaY)
	assert.Equal(t, 30.0, p.IgnitionDeltaTime)

	assert.True(t, p.TerrainEffect)
	assert.True(t, p.WindEffect)

	assert.Equal(t, -1.0, p.PercentOverride)
	assert.Equal(t, 0.0, p.NodataElevation)

	assert.True(t, p.SpatialInterp)
	assert.False(t, p.FromSpatialWeather)
	assert.False(t, p.HistoryOnFWI)
	assert.True(t, p.BurningConditionsOn)
	assert.False(t, p.TemporalInterp)
}

// TestDecode_BooleanTruthiness pins the raw-text truthiness contract of
// boolean lines: any non-empty line is true, including the literal "false".
func TestDecode_BooleanTruthiness(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "empty line is false", raw: "", want: false},
		{name: "literal 1 is true", raw: "1", want: true},
		{name: "literal 0 is true", raw: "0", want: true},
		{name: "literal false is true", raw: "false", want: true},
		{name: "arbitrary text is true", raw: "no", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// --- Arrange ---
			lines := testutil.ParamLines()
			lines[29] = tc.raw // line 30, stop at grid end

			// --- Act ---
			p, err := Decode(lines)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.StopAtGridEnd)
		})
	}
}

// TestDecode_Coordinate covers the "lat,lon" line grammar, including the
// surplus-component case where trailing fields are ignored.
func TestDecode_Coordinate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		raw     string
		want    Coordinate
		wantErr string
	}{
		{
			name: "plain pair",
			raw:  "51.6542,-115.3617",
			want: Coordinate{Lat: 51.6542, Lon: -115.3617},
		},
		{
			name: "surplus components ignored",
			raw:  "51.6542,-115.3617,1342.0,extra",
			want: Coordinate{Lat: 51.6542, Lon: -115.3617},
		},
		{
			name:    "single component",
			raw:     "51.6542",
			wantErr: "expected two comma-separated components",
		},
		{
			name:    "non-numeric latitude",
			raw:     "north,-115.3617",
			wantErr: "invalid value",
		},
		{
			name:    "non-numeric longitude",
			raw:     "51.6542,west",
			wantErr: "invalid value",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// --- Arrange ---
			lines := testutil.ParamLines()
			lines[7] = tc.raw // line 8, ignition location

			// --- Act ---
			p, err := Decode(lines)

			// --- Assert ---
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Contains(t, err.Error(), "line 8 (ignition location)")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.IgnitionLocation)
		})
	}
}

// TestDecode_BadLines verifies that parse failures name the 1-based line,
// the field it carries, and the raw text.
func TestDecode_BadLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		index   int
		raw     string
		wantErr string
	}{
		{
			name:    "bad timestamp",
			index:   6,
			raw:     "yesterday at noon",
			wantErr: `line 7 (ignition time): invalid value "yesterday at noon"`,
		},
		{
			name:    "bad float",
			index:   11,
			raw:     "high",
			wantErr: `line 12 (station elevation): invalid value "high"`,
		},
		{
			name:    "bad integer",
			index:   18,
			raw:     "13.5",
			wantErr: `line 19 (hourly ffmc hour): invalid value "13.5"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// --- Arrange ---
			lines := testutil.ParamLines()
			lines[tc.index] = tc.raw

			// --- Act ---
			_, err := Decode(lines)

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// TestDecode_FirstErrorWins verifies that with several bad lines the error
// reports the earliest one.
func TestDecode_FirstErrorWins(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	lines := testutil.ParamLines()
	lines[11] = "high" // line 12
	lines[18] = "late" // line 19

	// --- Act ---
	_, err := Decode(lines)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 12 (station elevation)")
	assert.NotContains(t, err.Error(), "line 19")
}

func TestDecode_ShortFile(t *testing.T) {
	t.Parallel()
	// --- Act ---
	_, err := Decode([]string{"landscape", "fuels.lut", "zone14.prj"})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 45 parameter lines, got 3")
}

func TestDecode_SurplusLinesIgnored(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	lines := append(testutil.ParamLines(), "trailing comment", "")

	// --- Act ---
	p, err := Decode(lines)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "landscape", p.InputFolder)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "unix line endings",
			raw:  "a\nb\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "windows line endings",
			raw:  "a\r\nb\r\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "blank lines survive",
			raw:  "a\n\nc",
			want: []string{"a", "", "c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SplitLines(tc.raw))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a file on disk", func(t *testing.T) {
		t.Parallel()
		// --- Arrange ---
		path := testutil.WriteParamsFile(t, testutil.ParamLines())

		// --- Act ---
		p, err := Load(path)

		// --- Assert ---
		require.NoError(t, err)
		assert.Equal(t, "HINSHAW", p.StationName)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		// --- Act ---
		_, err := Load("does/not/exist.txt")

		// --- Assert ---
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read parameter file")
	})

	t.Run("decode failures name the file", func(t *testing.T) {
		t.Parallel()
		// --- Arrange ---
		lines := testutil.ParamLines()
		lines[11] = "high"
		path := testutil.WriteParamsFile(t, lines)

		// --- Act ---
		_, err := Load(path)

		// --- Assert ---
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.Contains(t, err.Error(), "line 12 (station elevation)")
	})
}
