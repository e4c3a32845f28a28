package ps

import "fmt"

// Dedupe collapses records sharing a dedup key, keeping the first occurrence
// and preserving input order. Records with neither an ID nor a PS code get a
// synthetic key so they are kept rather than dropped.
func Dedupe(records []*ProblemStatement) []*ProblemStatement {
	seen := make(map[string]bool, len(records))
	unique := make([]*ProblemStatement, 0, len(records))

	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			key = fmt.Sprintf("UNK-%d", len(unique))
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, rec)
	}

	return unique
}
