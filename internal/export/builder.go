package export

import (
	"fmt"
	"strings"
	"time"
)

// OutputSuffix is the fixed file extension every export output carries.
const OutputSuffix = ".tif"

// Temporal is the time specification of one export: a single instant when
// only Start is set, or an inclusive range when End is set as well. Whether
// End actually falls after Start is left to the engine's own validation.
type Temporal struct {
	Start time.Time
	End   time.Time
}

// IsRange reports whether the temporal spans a range rather than an instant.
func (t Temporal) IsRange() bool {
	return !t.End.IsZero()
}

// Descriptor is the fully resolved, engine-ready form of one export request.
type Descriptor struct {
	Statistic  Statistic
	OutputPath string
	Temporal   Temporal
}

// Build maps every validated entry to a typed descriptor, in entry order. It
// is a pure function: no I/O, no side effects beyond the returned slice. The
// prefix is the scenario-relative directory every output path starts with.
func Build(entries EntrySet, prefix string) ([]Descriptor, error) {
	descriptors := make([]Descriptor, 0, entries.Len())

	for _, flag := range entries.Flags() {
		args := entries.Args(flag)

		spec, ok := flagTable[flag]
		if !ok {
			return nil, fmt.Errorf("unknown export type %q", flag)
		}

		start, err := parseInstant(flag, args[1])
		if err != nil {
			return nil, err
		}
		temporal := Temporal{Start: start}
		if len(args) == 3 {
			end, err := parseInstant(flag, args[2])
			if err != nil {
				return nil, err
			}
			temporal.End = end
		}

		descriptors = append(descriptors, Descriptor{
			Statistic:  spec.stat,
			OutputPath: NormalizeOutputPath(prefix, args[0]),
			Temporal:   temporal,
		})
	}

	return descriptors, nil
}

// NormalizeOutputPath joins the scenario-relative prefix with the requested
// filename and appends the output suffix when it is not already present. The
// normalization is idempotent: a name that already carries the suffix passes
// through unchanged.
func NormalizeOutputPath(prefix, name string) string {
	path := prefix + name
	if !strings.HasSuffix(path, OutputSuffix) {
		path += OutputSuffix
	}
	return path
}

// parseInstant decodes one ISO-8601 timestamp argument, naming the owning
// flag and the raw value on failure.
func parseInstant(flag, raw string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("export %q: invalid timestamp %q: %w", flag, raw, err)
	}
	return ts, nil
}
