// Package primary declares the interfaces the inbound adapters drive.
package primary

import "github.com/nusclubs/clubconnect/internal/domain/command"

// Logic executes one command line and returns the user-facing result. Errors
// from any stage are already folded into the result.
type Logic interface {
	Execute(line string) command.Result
}
