// Package version carries build metadata set through -ldflags.
package version

import "fmt"

var (
	Current = "dev"
	Commit  = ""
)

// String renders "<version>" or "<version> (<commit>)".
func String() string {
	if Commit == "" {
		return Current
	}
	return fmt.Sprintf("%s (%s)", Current, Commit)
}
