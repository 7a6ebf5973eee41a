// Package fuels carries the FBP fuel reference table attached to every job,
// plus the optional override file that renames, recolors, or hides rows.
package fuels
