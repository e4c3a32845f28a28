// Package ps defines the ProblemStatement record and its deduplication.
//
// Every export format shares the canonical column order declared here, so
// CSV, JSON, and XLSX outputs always describe the same schema. Records are
// keyed by their problem statement ID, falling back to the listing PS code
// when the labeled ID is missing.
package ps
