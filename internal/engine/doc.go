// Package engine is the HTTP client for the simulation engine's job API. It
// validates assembled jobs against the engine and submits them for
// execution; it owns the wire encoding of a job.
package engine
