// Package catalogue provides the immutable per-worker lookup from step names
// to candidate techniques and from technique names to parameter mappings.
package catalogue
