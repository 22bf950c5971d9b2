// Package cli implements the pir-analyzer command-line interface.
package cli
