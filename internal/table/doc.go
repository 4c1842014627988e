// Package table holds the slice-by-4 lookup tables behind the software
// engine. Tables for the catalog polynomials are generated ahead of time by
// cmd/gentable; tables for any other polynomial are built on first use and
// shared.
package table
