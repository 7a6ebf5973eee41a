// Package validation models the hierarchical validation result returned by
// the simulation engine and flattens its leaf failures into diagnostic
// lines.
package validation
