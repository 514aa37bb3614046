package pkg

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"
)

// FrequencyTable maps each distinct symbol of the input to its occurrence
// count. The sum of all counts equals the input length in symbols.
type FrequencyTable map[rune]int64

// CountFrequencies builds the frequency table for one input.
func CountFrequencies(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, r := range text {
		freqs[r]++
	}
	return freqs
}

// Total returns the number of symbols the table was counted over.
func (f FrequencyTable) Total() int64 {
	var total int64
	for _, n := range f {
		total += n
	}
	return total
}

// MarshalJSON writes the table as a JSON object keyed by the one-character
// string of each symbol. JSON escaping keeps control and non-printable
// symbols intact, so symbol identity survives the round trip exactly.
func (f FrequencyTable) MarshalJSON() ([]byte, error) {
	raw := make(map[string]int64, len(f))
	for r, n := range f {
		raw[string(r)] = n
	}
	return json.Marshal(raw)
}

// UnmarshalJSON rejects keys that are not exactly one symbol.
func (f *FrequencyTable) UnmarshalJSON(data []byte) error {
	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	table := make(FrequencyTable, len(raw))
	for k, n := range raw {
		r, size := utf8.DecodeRuneInString(k)
		if k == "" || size != len(k) || (r == utf8.RuneError && size == 1) {
			return fmt.Errorf("frequency table key %q is not a single symbol", k)
		}
		table[r] = n
	}
	*f = table
	return nil
}

// symbols returns the table's symbols in ascending order. Tree construction
// seeds its heap in this order so that rebuilding from a stored table always
// reproduces the tree built at compress time.
func (f FrequencyTable) symbols() []rune {
	keys := make([]rune, 0, len(f))
	for r := range f {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
