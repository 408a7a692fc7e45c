package staticd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/staticd"
)

func TestParseRange(t *testing.T) {
	const length = 10 // "Some text."

	tt := []struct {
		Name   string
		Header string
		Want   []staticd.ResolvedRange
	}{
		{Name: "no header", Header: "", Want: nil},
		{Name: "explicit bounds", Header: "bytes=0-1", Want: []staticd.ResolvedRange{{First: 0, Last: 1}}},
		{Name: "open ended", Header: "bytes=9-", Want: []staticd.ResolvedRange{{First: 9, Last: 9}}},
		{Name: "end clamped to length", Header: "bytes=9-10000", Want: []staticd.ResolvedRange{{First: 9, Last: 9}}},
		{Name: "suffix", Header: "bytes=-1", Want: []staticd.ResolvedRange{{First: 9, Last: 9}}},
		{Name: "suffix covering whole resource", Header: "bytes=-11", Want: []staticd.ResolvedRange{{First: 0, Last: 9}}},
		{Name: "suffix equal to length", Header: "bytes=-10", Want: []staticd.ResolvedRange{{First: 0, Last: 9}}},
		{
			Name:   "multiple ranges",
			Header: "bytes=0-1, 4-5, 8-9",
			Want: []staticd.ResolvedRange{
				{First: 0, Last: 1},
				{First: 4, Last: 5},
				{First: 8, Last: 9},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			set, err := staticd.ParseRange(tc.Header, length)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, set.Ranges)
		})
	}
}

func TestParseRange_Unsatisfiable(t *testing.T) {
	const length = 10

	headers := []string{
		"bytes= foo bar",
		"bytes=",
		"bytes=abc-def",
		"bytes=1",
		"bytes=-",
		"bytes=-0",
		"bytes=5-2",
		"bytes=10-",
		"bytes=100-200",
		"lines=0-1",
		"bytes=0-1, oops, 8-9",
	}

	for _, header := range headers {
		t.Run(header, func(t *testing.T) {
			_, err := staticd.ParseRange(header, length)
			assert.ErrorIs(t, err, staticd.ErrRangeNotSatisfiable)
		})
	}
}

func TestResolvedRange(t *testing.T) {
	rng := staticd.ResolvedRange{First: 4, Last: 5}

	assert.Equal(t, int64(2), rng.Length())
	assert.Equal(t, "bytes 4-5/10", rng.ContentRange(10))
}
