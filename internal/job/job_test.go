package job

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/embergrid/internal/export"
	"github.com/vk/embergrid/internal/fuels"
	"github.com/vk/embergrid/internal/params"
	"github.com/vk/embergrid/internal/testutil"
)

func decodedParams(t *testing.T) *params.Parameters {
	t.Helper()
	p, err := params.Decode(testutil.ParamLines())
	require.NoError(t, err)
	return p
}

func TestAssemble(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	p := decodedParams(t)
	entries := export.ParseTokens([]string{
		"-BG", "fire1", "2001-10-16T13:00:00-05:00", "2001-10-16T21:00:00-05:00",
		"-FI_MAP", "intensity", "2001-10-16T13:00:00-05:00",
	})
	opts := Options{Priority: 2, Tags: map[string]string{"team": "fire-ops"}}

	// --- Act ---
	j, err := Assemble(p, fuels.Default(), entries, "runs/demo/", opts)

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(j.ID, "job-"))
	assert.False(t, j.CreatedAt.IsZero())
	assert.Equal(t, 2, j.Priority)
	assert.Equal(t, map[string]string{"team": "fire-ops"}, j.Tags)
	assert.Same(t, p, j.Params)
	assert.Len(t, j.Fuels, 21)
	require.Len(t, j.Exports, 2)
	assert.Equal(t, "runs/demo/fire1.tif", j.Exports[0].OutputPath)
	assert.Equal(t, "runs/demo/intensity.tif", j.Exports[1].OutputPath)
	assert.Equal(t,
		[]string{"fuels.lut", "zone14.prj", "elevation.asc", "fuelmap.asc", "weather.txt"},
		j.StagedFiles, "staged input names follow parameter-file order")
}

func TestAssemble_IDsAreUnique(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	p := decodedParams(t)
	entries := export.ParseTokens([]string{"-AT", "arrival", "2001-10-16T13:00:00-05:00"})

	// --- Act ---
	first, err := Assemble(p, fuels.Default(), entries, "", Options{})
	require.NoError(t, err)
	second, err := Assemble(p, fuels.Default(), entries, "", Options{})
	require.NoError(t, err)

	// --- Assert ---
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAssemble_Failures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		tokens  []string
		wantErr string
	}{
		{
			name:    "validation failure stops assembly",
			tokens:  []string{"-NOPE", "out", "2001-10-16T13:00:00-05:00"},
			wantErr: "unknown export type",
		},
		{
			name:    "builder failure stops assembly",
			tokens:  []string{"-AT", "out", "not-a-time"},
			wantErr: "invalid timestamp",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// --- Arrange ---
			entries := export.ParseTokens(tc.tokens)

			// --- Act ---
			_, err := Assemble(decodedParams(t), fuels.Default(), entries, "", Options{})

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
