// Package export serializes deduplicated problem statements to files.
//
// Every format writes the same schema in the same column order (ps.Columns),
// one file per requested format under a shared base name. A failing format is
// reported through its Result without stopping the remaining formats.
package export
