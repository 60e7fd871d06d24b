package mapping

// Matcher selects the best-fitting mapping for a CSV header row.
type Matcher struct {
	mappings []Mapping
}

// NewMatcher creates a Matcher over the given mappings. Order is significant:
// it is the tie-break for equally specific candidates.
func NewMatcher(mappings []Mapping) *Matcher {
	return &Matcher{mappings: mappings}
}

// Default returns a Matcher over the builtin bank formats.
func Default() *Matcher {
	return NewMatcher(Builtin())
}

// Lookup returns a mapping by name.
func (m *Matcher) Lookup(name string) (Mapping, bool) {
	for _, mp := range m.mappings {
		if mp.Name == name {
			return mp, true
		}
	}
	return Mapping{}, false
}

// Match returns the mapping whose required columns are all present in the
// header, preferring the candidate with the most required columns. Ties go
// to the first-declared mapping. ok is false when no mapping fits; the
// caller must not guess.
func (m *Matcher) Match(header []string) (Mapping, bool) {
	have := make(map[string]bool, len(header))
	for _, col := range header {
		have[col] = true
	}

	var best Mapping
	bestSize := -1
	for _, candidate := range m.mappings {
		required := candidate.RequiredColumns()
		if len(required) <= bestSize {
			continue
		}
		subset := true
		for _, col := range required {
			if !have[col] {
				subset = false
				break
			}
		}
		if subset {
			best = candidate
			bestSize = len(required)
		}
	}

	if bestSize < 0 {
		return Mapping{}, false
	}
	return best, true
}

// Bank of America checking exports omit the header row and open with a
// decorative 3-column summary block instead. The second preamble cell is
// empty in the raw file; spreadsheet tools surface it as "Unnamed: 1".
var (
	preambleEffectiveHeader = []string{"Date", "Description", "Amount", "Running Bal."}
)

// preambleSkipRows counts leading file rows (preamble row included) to drop
// before the data starts.
const preambleSkipRows = 8

// DetectPreamble reports whether the first row of a file is the known
// headerless preamble. When it is, the returned header replaces the file's
// own and skip rows must be discarded before reading data. This rewrite
// takes precedence over generic matching.
func DetectPreamble(header []string) (effective []string, skip int, ok bool) {
	if len(header) != 3 || header[0] != "Description" || header[2] != "Summary Amt." {
		return nil, 0, false
	}
	if header[1] != "Unnamed: 1" && header[1] != "" {
		return nil, 0, false
	}
	return preambleEffectiveHeader, preambleSkipRows, true
}
