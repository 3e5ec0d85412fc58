// Package cli implements the rectassign command-line interface.
//
// The CLI reads a cost matrix from a JSON file and solves it with the lsap
// package, printing the resulting (row, column) pairs and total cost. It is
// built on cobra for command structure and charmbracelet/log for
// structured, leveled logging, with --verbose (-v) switching from info to
// debug level.
//
// # Commands
//
//	solve — solve a cost matrix loaded from a JSON file
//
// # Example
//
//	rectassign solve --input cost.json --maximize
package cli

import "context"

// SetVersion sets the version metadata reported by --version.
func SetVersion(v, commit, date string) {
	version, buildCommit, buildDate = v, commit, date
}

var (
	version     string
	buildCommit string
	buildDate   string
)

// Execute runs the rectassign CLI to completion.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
