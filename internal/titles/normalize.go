// Package titles provides job-title normalization and similarity scoring.
package titles

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords are seniority and organizational qualifiers that carry no signal
// about the occupational discipline of a title.
var stopwords = map[string]bool{
	"senior": true, "junior": true, "lead": true, "principal": true,
	"staff": true, "chief": true, "head": true, "manager": true,
	"director": true, "vp": true, "vice": true, "president": true,
	"associate": true, "assistant": true, "deputy": true,
	"team": true, "department": true, "group": true, "division": true,
	"global": true, "regional": true, "intern": true, "trainee": true,
	"sr": true, "jr": true, "ii": true, "iii": true, "iv": true,
}

// Normalize tokenizes a title into lowercase alphanumeric tokens longer than
// one character, with seniority/organizational stopwords removed. The result
// is sorted and de-duplicated, so Normalize is idempotent over its own output.
func Normalize(title string) []string {
	seen := make(map[string]bool)
	var word strings.Builder

	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) > 1 && !stopwords[w] {
			seen[w] = true
		}
	}

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	tokens := make([]string, 0, len(seen))
	for t := range seen {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Similarity returns the Jaccard index of the normalized token sets of two
// titles as an integer 0-100, plus the intersecting tokens for explanation.
// A title that normalizes to nothing scores 0 against everything.
func Similarity(a, b string) (int, []string) {
	ta := Normalize(a)
	tb := Normalize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0, nil
	}

	setA := make(map[string]bool, len(ta))
	for _, t := range ta {
		setA[t] = true
	}

	var common []string
	for _, t := range tb {
		if setA[t] {
			common = append(common, t)
		}
	}

	union := len(ta) + len(tb) - len(common)
	if union == 0 {
		return 0, nil
	}
	score := int(float64(len(common))/float64(union)*100 + 0.5)
	return score, common
}
