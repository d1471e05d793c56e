// Package main provides the entry point for the ehrtable CLI.
//
// ehrtable reads a processed EHR export, adds the ICD-10 code for each
// diagnosis, prints the result as a table and saves it as CSV.
//
// Usage:
//
//	ehrtable
//	ehrtable -i records.json -o table.csv
//	ehrtable codes
//
// See --help for all available options.
package main

// main is the entry point for ehrtable.
func main() {
	Execute()
}
