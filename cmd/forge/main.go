// cmd/forge/main.go
package main

import (
	"github.com/mwiater/forge/internal/cli"
)

// main starts the forge CLI application by delegating to the cobra root
// command defined in the cli package.
func main() {
	cli.Execute()
}
