package bids

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/camelcards/camel"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestParse(t *testing.T) {
	t.Parallel()
	bid, err := Parse("KTJJT   220", 4, camel.Standard)
	require.NoError(t, err)
	assert.Equal(t, "KTJJT", bid.Hand.String())
	assert.Equal(t, int64(220), bid.Amount)
	assert.Equal(t, 4, bid.Line)
	assert.Equal(t, "(KTJJT, 220)", bid.String())

	bid, err = Parse("\tAAAAA -5 ", 1, camel.Jokers)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), bid.Amount)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		line    string
		wantMsg string
		isHand  bool
	}{
		{name: "missing bid", line: "32T3K", wantMsg: "want 2 fields, got 1"},
		{name: "extra field", line: "32T3K 765 1", wantMsg: "want 2 fields, got 3"},
		{name: "non integer bid", line: "32T3K 7.5", wantMsg: `invalid bid "7.5"`},
		{name: "bad card", line: "32X3K 765", wantMsg: `invalid card 'X'`, isHand: true},
		{name: "short hand", line: "32T3 765", wantMsg: "want 5 cards, got 4", isHand: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line, 7, camel.Standard)
			var recErr *RecordParseError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, 7, recErr.Line)
			assert.Equal(t, tt.line, recErr.Text)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), "line 7")

			var handErr *camel.HandParseError
			assert.Equal(t, tt.isHand, errors.As(err, &handErr))
		})
	}
}

func TestRead(t *testing.T) {
	t.Parallel()
	bids, err := Read(strings.NewReader(sample+"\n\n"), camel.Standard)
	require.NoError(t, err)
	require.Len(t, bids, 5)
	assert.Equal(t, "32T3K", bids[0].Hand.String())
	assert.Equal(t, int64(483), bids[4].Amount)
	assert.Equal(t, 5, bids[4].Line)
}

func TestReadAbortsOnBadLine(t *testing.T) {
	t.Parallel()
	input := "32T3K 765\nT55J5 oops\nKK677 28\n"
	bids, err := Read(strings.NewReader(input), camel.Standard)
	assert.Nil(t, bids)

	var recErr *RecordParseError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 2, recErr.Line)
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sample.input")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	bids, err := ReadFile(path, camel.Jokers)
	require.NoError(t, err)
	assert.Len(t, bids, 5)
	assert.Equal(t, camel.FourOfAKind, bids[3].Hand.Category())
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.input")
	_, err := ReadFile(path, camel.Standard)

	var resErr *ResourceError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, path, resErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadFileKeepsRecordErrors(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.input")
	require.NoError(t, os.WriteFile(path, []byte("AAAAA 1\nAAAA 2\n"), 0644))

	_, err := ReadFile(path, camel.Standard)
	var resErr *ResourceError
	assert.False(t, errors.As(err, &resErr))
	var recErr *RecordParseError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 2, recErr.Line)
}

func TestReadRejectsInteriorBlankLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantText string
	}{
		{"empty line", "32T3K 765\n\nKK677 28\n", 2, ""},
		{"whitespace line", "32T3K 765\nKK677 28\n   \nQQQJA 483\n", 3, "   "},
		{"run of blank lines", "32T3K 765\n\n\t\n\nQQQJA 483\n", 2, ""},
		{"leading blank line", "\n32T3K 765\n", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bids, err := Read(strings.NewReader(tt.input), camel.Standard)
			assert.Nil(t, bids)

			var recErr *RecordParseError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, tt.wantLine, recErr.Line)
			assert.Equal(t, tt.wantText, recErr.Text)
			assert.Contains(t, err.Error(), "want 2 fields, got 0")
		})
	}
}

func TestReadAllowsTrailingBlankLines(t *testing.T) {
	t.Parallel()
	bids, err := Read(strings.NewReader("32T3K 765\nKK677 28\n\n  \n\t\n"), camel.Standard)
	require.NoError(t, err)
	assert.Len(t, bids, 2)

	bids, err = Read(strings.NewReader("\n\n"), camel.Standard)
	require.NoError(t, err)
	assert.Empty(t, bids)
}
