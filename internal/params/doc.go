// Package params decodes the flat simulation parameter file. The file is a
// fixed sequence of 45 positional lines with no keys and no headers; line N
// carrying field F is the entire contract. Decoding happens once at startup
// and the result is read-only afterwards.
package params
