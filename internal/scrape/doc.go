// Package scrape converts the SIH listing markup into problem statement
// records.
//
// The primary strategy is structural: every element whose own text carries the
// "Problem Statement Details" heading marks a detail block, and the block's
// container is the widest ancestor still holding exactly one such heading.
// Each container is flattened to line-structured text and split on the known
// field labels.
//
// When the primary pass finds zero blocks (the site structure changed), a
// regex fallback splits the whole page text on the heading, or failing that
// scans for the label lines directly. Both strategies feed the same
// label-to-record mapping, so either can drift-proof the other without
// touching deduplication or export.
package scrape
