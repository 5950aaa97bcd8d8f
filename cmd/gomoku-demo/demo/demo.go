// Package demo implements a terminal self-play driver for the engine: it
// runs P1 and P2 against each other with a shared Engine, printing the
// board and search statistics after every move. It stands in for the
// graphical front-end spec.md section 1 places outside this module's scope.
package demo

import (
	"flag"
	"fmt"
	"log"

	"github.com/jainavas/gomoku-engine/internal/engine"
	"github.com/jainavas/gomoku-engine/internal/match"
)

// Run parses args and plays a self-play game to completion or until
// maxPlies is reached, logging one line per move and the final board.
func Run(args []string) {
	fs := flag.NewFlagSet("gomoku-demo", flag.ExitOnError)
	ttMB := fs.Int("tt", 64, "transposition table size in MiB")
	depth := fs.Int("depth", 0, "fixed search depth (0 = adaptive by ply phase)")
	maxPlies := fs.Int("plies", 80, "maximum plies before the demo stops")
	quiet := fs.Bool("quiet", false, "suppress the board diagram after every move")
	fs.Parse(args)

	log.Printf("gomoku-demo: tt=%dMiB depth=%d maxPlies=%d", *ttMB, *depth, *maxPlies)

	eng := engine.NewEngine(*ttMB*1024*1024, *depth)
	game := match.NewGame(eng)

	for ply := 0; ply < *maxPlies; ply++ {
		mover := game.Position().SideToMove
		m, result, err := game.ApplyEngineMove()
		if err != nil {
			log.Fatalf("ply %d: %v", ply, err)
		}

		stats := eng.LastStats()
		log.Printf("ply %-3d %s plays %-4s nodes=%-8d hitRate=%.1f%% hashFull=%d/1000 score=%d elapsed=%s",
			ply, mover, m, stats.Nodes, stats.HitRate, stats.HashFull, stats.Score, stats.Elapsed)

		if !*quiet {
			fmt.Println(game.Position().Render())
		}

		if len(result.MyCaptured) > 0 {
			log.Printf("  %s captured %d stones at %v", mover, len(result.MyCaptured), result.MyCaptured)
		}

		if game.IsGameOver() {
			log.Printf("game over: %s wins after %d plies", game.Winner(), ply+1)
			return
		}
	}

	log.Printf("demo stopped after %d plies with no winner", *maxPlies)
}
