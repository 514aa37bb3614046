package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeTablePrefixFree(t *testing.T) {
	freqs := CountFrequencies("the quick brown fox jumps over the lazy dog, twice over")
	codes, _ := buildTree(freqs).codeTables()
	require.Len(t, codes, len(freqs))

	for a, codeA := range codes {
		require.NotEmpty(t, codeA)
		for b, codeB := range codes {
			if a == b {
				continue
			}
			require.False(t, strings.HasPrefix(codeB, codeA),
				"code %q of %q is a prefix of code %q of %q", codeA, a, codeB, b)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	// Equal frequencies everywhere, so only the tie-break decides the shape.
	freqs := FrequencyTable{'a': 3, 'b': 3, 'c': 3, 'd': 3, 'e': 3, 'f': 3}

	first, _ := buildTree(freqs).codeTables()
	for i := 0; i < 20; i++ {
		again, _ := buildTree(freqs).codeTables()
		require.Equal(t, first, again)
	}
}

func TestCodeTablesAreInverses(t *testing.T) {
	freqs := CountFrequencies("mississippi")
	codes, reverse := buildTree(freqs).codeTables()
	require.Equal(t, len(codes), len(reverse))
	for sym, code := range codes {
		require.Equal(t, sym, reverse[code])
	}
}

func TestSingleSymbolGetsNonEmptyCode(t *testing.T) {
	codes, reverse := buildTree(FrequencyTable{'x': 7}).codeTables()
	require.Equal(t, map[rune]string{'x': "0"}, codes)
	require.Equal(t, map[string]rune{"0": 'x'}, reverse)
}

func TestEmptyTableBuildsEmptyTree(t *testing.T) {
	codes, reverse := buildTree(FrequencyTable{}).codeTables()
	require.Empty(t, codes)
	require.Empty(t, reverse)
}

func TestSkewedFrequenciesStayPrefixFree(t *testing.T) {
	// Heavily skewed counts give a near-linear tree; the traversal must not
	// blow up and the codes must stay decodable.
	freqs := make(FrequencyTable)
	count := int64(1)
	for r := 'a'; r <= 'z'; r++ {
		freqs[r] = count
		count *= 2
	}
	codes, reverse := buildTree(freqs).codeTables()
	require.Len(t, codes, 26)
	require.Len(t, reverse, 26)
	// The rarest symbol sits deepest.
	require.Equal(t, 25, len(codes['a']))
}
