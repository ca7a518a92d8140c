// Package buildinfo exposes build metadata injected at link time:
//
//	go build -ldflags "-X .../internal/buildinfo.Version=v1.0.0 -X .../internal/buildinfo.Date=2026-08-29"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
)

// Print writes a one-line build summary.
func Print(w io.Writer) {
	fmt.Fprintf(w, "maumdiary %s (built %s)\n", Version, Date)
}
