// Package diag carries diagnostics between the pipeline phases and their
// callers. Phases never abort the process on malformed input: they report a
// coded diagnostic through a Reporter and return an error where the phase
// cannot continue. Codes are grouped by phase (LEX1xxx, SYN2xxx, EVAL3xxx).
package diag
