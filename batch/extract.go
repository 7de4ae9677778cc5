package batch

import "strings"

// ExtractQueries normalizes raw text into an ordered list of query strings.
// Each line is trimmed; empty lines and comment lines starting with '#' are
// dropped. Input order is preserved and duplicates are kept.
func ExtractQueries(text string) []string {
	var queries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	return queries
}
