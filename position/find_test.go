// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package position

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/keep94/digitseq/consume"
	"github.com/keep94/digitseq/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var knownPositions = []struct {
	query string
	want  int64
}{
	{"1", 0},
	{"0", 10},
	{"9", 8},
	{"00", 190},
	{"01", 10},
	{"10", 9},
	{"11", 11},
	{"91", 8},
	{"92", 28},
	{"99", 168},
	{"000", 2890},
	{"001", 190},
	{"012", 251},
	{"040", 1091},
	{"091", 170},
	{"100", 189},
	{"454", 79},
	{"455", 98},
	{"456", 3},
	{"667", 122},
	{"910", 8},
	{"999", 2587},
	{"0010", 190},
	{"0100", 2892},
	{"0404", 15050},
	{"0910", 2927},
	{"0991", 2617},
	{"9100", 188},
	{"00101", 190},
	{"09991", 35286},
	{"53635", 13034},
	{"99100", 187},
	{"899900", 2586},
	{"98999100", 2884},
	{"123456789", 0},
	{"123456798", 1000000071},
	{"949225100", 382689688},
	{"1112131415", 11},
	{"58257860625", 24674951477},
	{"3999589058124", 6957586376885},
	{"555899959741198", 1686722738828503},
	{"9876543210987654321", 97654320989},
	{"1234567891011121314151617", 0},
}

func TestFind(t *testing.T) {
	for _, tt := range knownPositions {
		got, err := Find(tt.query)
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.want, got, "Find(%q)", tt.query)
	}
}

func TestFindRoundTrip(t *testing.T) {
	for _, tt := range knownPositions {
		got, err := consume.Read(tt.want, len(tt.query))
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.query, got)
	}
}

func TestFindIdempotent(t *testing.T) {
	for _, query := range []string{"0", "92", "99100", "0404"} {
		first, err := Find(query)
		require.NoError(t, err)
		second, err := Find(query)
		require.NoError(t, err)
		assert.Equal(t, first, second, query)
	}
}

func TestFindConsecutiveIntegers(t *testing.T) {
	want, err := IndexOf(11)
	require.NoError(t, err)
	got, err := Find("1112131415")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindInvalid(t *testing.T) {
	for _, query := range []string{"", "12a", "-1", " 1", "1.5"} {
		_, err := Find(query)
		assert.ErrorIs(t, err, ErrInvalidQuery, "%q", query)
	}
}

func TestFindOverflow(t *testing.T) {
	for _, query := range []string{
		"0000000000000000000",
		"98765432109876543210",
	} {
		_, err := Find(query)
		assert.ErrorIs(t, err, ErrOverflow, query)
	}
}

// TestFindMinimal compares Find against a table of first occurrences built
// by reading the sequence, for every query of up to 5 digits.
func TestFindMinimal(t *testing.T) {
	maxLength := 5
	if testing.Short() {
		maxLength = 4
	}
	for length := 1; length <= maxLength; length++ {
		table, err := oracle.FirstOccurrences(length)
		require.NoError(t, err)
		for v, want := range table {
			query := fmt.Sprintf("%0*d", length, v)
			got, err := Find(query)
			require.NoError(t, err, query)
			require.Equal(t, want, got, "Find(%q)", query)
		}
	}
}

func TestFindMinimalSample(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a table of every 6 digit string")
	}
	table, err := oracle.FirstOccurrences(6)
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(94, 6))
	for range 3000 {
		v := r.IntN(len(table))
		query := fmt.Sprintf("%06d", v)
		got, err := Find(query)
		require.NoError(t, err, query)
		require.Equal(t, table[v], got, "Find(%q)", query)
	}
}

func TestFindAgreesWithSearch(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, alphabet := range []string{"0123456789", "00991189"} {
		for range 200 {
			query := randomDigits(r, alphabet, 6+r.IntN(5))
			want, err := oracle.Search(query)
			require.NoError(t, err, query)
			got, err := Find(query)
			require.NoError(t, err, query)
			require.Equal(t, want, got, "Find(%q)", query)
		}
	}
}

func TestExplain(t *testing.T) {
	candidates, err := NewFinder().Explain("92")
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Position: 28, Strategy: CarriedRotation},
		{Position: 173, Strategy: Decomposition},
	}, candidates)

	candidates, err = NewFinder().Explain("456")
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Position: 3, Strategy: Decomposition},
		{Position: 1583, Strategy: Rotation},
		{Position: 1825, Strategy: Rotation},
	}, candidates)

	candidates, err = NewFinder().Explain("0")
	require.NoError(t, err)
	assert.Equal(t, []Candidate{{Position: 10, Strategy: LiteralZero}}, candidates)

	candidates, err = NewFinder().Explain("9")
	require.NoError(t, err)
	assert.Equal(t, []Candidate{{Position: 8, Strategy: TrailingNines}}, candidates)
}

func TestExplainVerified(t *testing.T) {
	candidates, err := NewFinder().Explain("99100")
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	assert.Equal(t, Candidate{Position: 187, Strategy: CarriedRotation}, candidates[0])
	for i, c := range candidates {
		got, err := consume.Read(c.Position, 5)
		require.NoError(t, err)
		assert.Equal(t, "99100", got)
		if i > 0 {
			assert.Greater(t, c.Position, candidates[i-1].Position)
		}
	}
}

func TestExplainInvalid(t *testing.T) {
	_, err := NewFinder().Explain("x")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestFinderLogsCandidates(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	got, err := NewFinder(WithLogger(logger)).Find("92")
	require.NoError(t, err)
	assert.Equal(t, int64(28), got)
	assert.Contains(t, buf.String(), `"msg":"candidate checked"`)
	assert.Contains(t, buf.String(), `"strategy":"carried-rotation"`)
	assert.Contains(t, buf.String(), `"query":"92"`)
}

func TestFinderNilLogger(t *testing.T) {
	got, err := NewFinder(WithLogger(nil)).Find("456")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestFindConcurrent(t *testing.T) {
	finder := NewFinder()
	results := make([]int64, len(knownPositions))
	var g errgroup.Group
	for i, tt := range knownPositions {
		g.Go(func() error {
			pos, err := finder.Find(tt.query)
			results[i] = pos
			return err
		})
	}
	require.NoError(t, g.Wait())
	for i, tt := range knownPositions {
		assert.Equal(t, tt.want, results[i], tt.query)
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "carry", Carry.String())
	assert.Equal(t, "decomposition", Decomposition.String())
	assert.Equal(t, "unknown", Strategy(42).String())
	text, err := FlankedZero.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "flanked-zero", string(text))

	var s Strategy
	require.NoError(t, s.UnmarshalText([]byte("carried-rotation")))
	assert.Equal(t, CarriedRotation, s)
	assert.Error(t, s.UnmarshalText([]byte("guess")))
}

func randomDigits(r *rand.Rand, alphabet string, length int) string {
	digits := make([]byte, length)
	for i := range digits {
		digits[i] = alphabet[r.IntN(len(alphabet))]
	}
	return string(digits)
}
