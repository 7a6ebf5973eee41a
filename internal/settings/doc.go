// Package settings loads the submitter's HCL settings: engine endpoint,
// broker endpoint, output layout, fuel overrides, and job defaults. A
// settings path may be a single file or a directory whose .hcl files are
// merged, with each top-level block allowed in at most one file.
package settings
