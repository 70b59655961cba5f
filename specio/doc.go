// Package specio reads graph specifications and writes them, and analysis
// reports, as JSON or YAML.
//
// The format comes from an explicit Format value or, for files, from the
// extension (.json, .yaml, .yml). Readers do not close their input.
package specio
