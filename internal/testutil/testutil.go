// Package testutil holds helpers shared by tests across the repository: a
// race-safe log capture buffer and canonical simulation input fixtures.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements fmt.Stringer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// ParamLines returns a complete, valid 45-line parameter fixture in file
// order. Callers may mutate individual lines to provoke specific failures.
func ParamLines() []string {
	return []string{
		"landscape",                 // 1  input folder
		"fuels.lut",                 // 2  fuel lookup file
		"zone14.prj",                // 3  projection file
		"elevation.asc",             // 4  elevation file
		"fuelmap.asc",               // 5  fuel map file
		"weather.txt",               // 6  weather file
		"2001-10-16T13:00:00-05:00", // 7  ignition time
		"51.6542,-115.3617",         // 8  ignition location
		"2001-10-16T00:00:00-05:00", // 9  scenario start
		"2001-10-17T22:00:00-05:00", // 10 scenario end
		"HINSHAW",                   // 11 station name
		"1342.0",                    // 12 station elevation
		"51.6500,-115.3700",         // 13 station location
		"85.0",                      // 14 starting ffmc
		"25.0",                      // 15 starting dmc
		"200.0",                     // 16 starting dc
		"0.0",                       // 17 starting precipitation
		"88.0",                      // 18 hourly ffmc value
		"13",                        // 19 hourly ffmc hour
		"2001-10-16T00:00:00-05:00", // 20 stream start
		"2001-10-17T22:00:00-05:00", // 21 stream end
		"19.0",                      // 22 burning min fwi
		"8.0",                       // 23 burning min isi
		"55.0",                      // 24 burning max rh
		"25.0",                      // 25 burning max wind speed
		"2.0",                       // 26 max acceleration timestep
		"1.0",                       // 27 distance resolution
		"1.0",                       // 28 perimeter resolution
		"1.0",                       // 29 min spreading ros
		"1",                         // 30 stop at grid end
		"1",                         // 31 breaching
		"",                          // 32 dynamic spatial threshold
		"",                          // 33 spotting
		"1.5",                       // 34 ignition delta x
		"1.5",                       // 35 ignition delta y
		"30.0",                      // 36 ignition delta time
		"1",                         // 37 fbp terrain effect
		"1",                         // 38 fbp wind effect
		"-1.0",                      // 39 fmc percent override
		"0.0",                       // 40 fmc nodata elevation
		"1",                         // 41 fwi spatial interpolation
		"",                          // 42 fwi from spatial weather
		"",                          // 43 fwi history on effected fwi
		"1",                         // 44 burning conditions on
		"",                          // 45 fwi temporal interpolation
	}
}

// WriteParamsFile writes the given parameter lines to a temp file and
// returns its path.
func WriteParamsFile(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}
