// Command gomoku-engine wraps cmd/gomoku-demo: the graphical front-end,
// menu, and input handling are external collaborators outside this module's
// scope (spec.md section 1), so the repository's only executable is the
// self-play demo used to exercise the engine from a terminal.
package main

import (
	"os"

	"github.com/jainavas/gomoku-engine/cmd/gomoku-demo/demo"
)

func main() {
	demo.Run(os.Args[1:])
}
