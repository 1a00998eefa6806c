// Package content resolves the legal information block shown on a practice
// area page. Blocks are authored as one YAML (or JSON) document per state and
// loaded into an immutable two-level Table keyed by state code then practice
// area slug. Coverage is sparse: a valid pair with no block resolves to nil.
package content
