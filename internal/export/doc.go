// Package export compiles raw command-line export requests into typed,
// engine-ready grid statistic descriptors. It covers the full pipeline from
// token grouping through grammar validation to descriptor construction, and
// owns the fixed table of recognized export statistics.
package export
