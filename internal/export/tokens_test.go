package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokens(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		tokens    []string
		wantOrder []string
		wantArgs  map[string][]string
	}{
		{
			name:      "single entry with range",
			tokens:    []string{"-BG", "fire1", "2001-10-16T13:00:00-05:00", "2001-10-16T21:00:00-05:00"},
			wantOrder: []string{"-BG"},
			wantArgs: map[string][]string{
				"-BG": {"fire1", "2001-10-16T13:00:00-05:00", "2001-10-16T21:00:00-05:00"},
			},
		},
		{
			name:      "multiple entries keep first-seen order",
			tokens:    []string{"-FI", "a", "t1", "-FL_MAP", "b", "t2", "-ROS", "c", "t3"},
			wantOrder: []string{"-FI", "-FL_MAP", "-ROS"},
			wantArgs: map[string][]string{
				"-FI":     {"a", "t1"},
				"-FL_MAP": {"b", "t2"},
				"-ROS":    {"c", "t3"},
			},
		},
		{
			name:      "repeated flag overwrites earlier arguments",
			tokens:    []string{"-FI", "old", "t1", "-FI", "new", "t2"},
			wantOrder: []string{"-FI"},
			wantArgs:  map[string][]string{"-FI": {"new", "t2"}},
		},
		{
			name:      "stray tokens before the first flag are dropped",
			tokens:    []string{"orphan", "another", "-AT", "out", "t1"},
			wantOrder: []string{"-AT"},
			wantArgs:  map[string][]string{"-AT": {"out", "t1"}},
		},
		{
			name:      "flag with no arguments is kept for the validator",
			tokens:    []string{"-FI"},
			wantOrder: []string{"-FI"},
			wantArgs:  map[string][]string{"-FI": nil},
		},
		{
			name:      "empty stream",
			tokens:    nil,
			wantOrder: []string{},
			wantArgs:  map[string][]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			set := ParseTokens(tc.tokens)

			require.Equal(t, len(tc.wantOrder), set.Len())
			assert.Equal(t, tc.wantOrder, set.Flags())
			for flag, want := range tc.wantArgs {
				assert.Equal(t, want, set.Args(flag), "arguments for %s", flag)
			}
		})
	}
}

func TestParseTokens_RepeatKeepsOriginalPosition(t *testing.T) {
	t.Parallel()

	set := ParseTokens([]string{"-FI", "a", "t1", "-FL", "b", "t2", "-FI", "c", "t3"})

	require.Equal(t, []string{"-FI", "-FL"}, set.Flags())
	assert.Equal(t, []string{"c", "t3"}, set.Args("-FI"))
}

func TestEntrySet_ArgsUnknownFlag(t *testing.T) {
	t.Parallel()

	set := ParseTokens([]string{"-FI", "a", "t1"})

	assert.Nil(t, set.Args("-NEVER_SEEN"))
}
