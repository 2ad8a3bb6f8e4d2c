// Command naitou-solve runs one fixed-depth-1 search on an arbitrary
// position and prints the chosen move, memoizing results in a database so
// repeated queries against the same position are free. It takes positions
// either from -sfen or one per line on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/hailam/naitou-shogi/internal/engine"
	"github.com/hailam/naitou-shogi/internal/sfen"
	"github.com/hailam/naitou-shogi/internal/shogi"
	"github.com/hailam/naitou-shogi/internal/storage"
)

var (
	cpuprofile     = flag.String("cpuprofile", "", "write cpu profile to file")
	sfenFl         = flag.String("sfen", "", "a single sfen position string; if empty, positions are read one per line from stdin")
	progressPlyFl  = flag.Int("progress-ply", 0, "progress_ply to evaluate at")
	noCacheFl      = flag.Bool("no-cache", false, "skip the solver memo table")
	dbDir          = flag.String("db", "", "database directory (defaults to the platform data dir)")
	forcedWinDepth = flag.Int("forced-win-depth", 0, "if >0, search this many HUM plies deep for a forced full-piece win instead of one fixed-depth-1 reply")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	var st *storage.Storage
	if !*noCacheFl {
		var err error
		if *dbDir == "" {
			st, err = storage.NewStorage()
		} else {
			st, err = storage.NewStorageAt(*dbDir)
		}
		if err != nil {
			log.Fatal(err)
		}
		defer st.Close()
	}

	if *sfenFl != "" {
		solveOne(st, *sfenFl)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		solveOne(st, line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func solveOne(st *storage.Storage, sfenStr string) {
	if *forcedWinDepth > 0 {
		solveForcedWinOne(sfenStr)
		return
	}

	if st != nil {
		if entry, found, err := st.LoadSolverEntry(sfenStr); err == nil && found {
			printEntry(sfenStr, entry)
			return
		}
	}

	pos, err := sfen.DecodePosition(sfenStr)
	if err != nil {
		log.Printf("skipping %q: %v", sfenStr, err)
		return
	}

	position := shogi.NewPositionFromBoard(pos.SideToMove, pos.Board, pos.Hands)
	root := engine.EvaluateRoot(position, *progressPlyFl, 0)
	bestSrcValue := 256
	bestMove, best := engine.Search(position, root, 0, &bestSrcValue)

	entry := storage.SolverEntry{
		ScoreNega:    best.ScoreNega,
		CapturePrice: best.CapturePrice,
		DisadvPrice:  best.DisadvPrice,
		Resigns:      bestMove == shogi.NoMove || best.DisadvPrice >= 40,
		HumCheckmate: best.HumIsCheckmated,
	}
	if !entry.Resigns {
		entry.BestMove = sfen.EncodeMove(bestMove)
	}

	if st != nil {
		if err := st.SaveSolverEntry(sfenStr, entry); err != nil {
			log.Printf("caching %q: %v", sfenStr, err)
		}
	}

	printEntry(sfenStr, entry)
}

// solveForcedWinOne runs the -forced-win-depth search and prints whichever
// line of HUM captures it found (none are cached; a forced-win line is
// cheap enough to not need the memo table the single-ply path uses).
func solveForcedWinOne(sfenStr string) {
	pos, err := sfen.DecodePosition(sfenStr)
	if err != nil {
		log.Printf("skipping %q: %v", sfenStr, err)
		return
	}
	position := shogi.NewPositionFromBoard(pos.SideToMove, pos.Board, pos.Hands)

	res := solveForcedWin(position, *forcedWinDepth)
	if !res.found {
		fmt.Printf("%s -> no forced full-piece win within %d ply\n", sfenStr, *forcedWinDepth)
		return
	}

	moves := make([]string, len(res.line))
	for i, m := range res.line {
		moves[i] = sfen.EncodeMove(m)
	}
	fmt.Printf("%s -> forced win in %d hum move(s): %s\n", sfenStr, len(res.line), strings.Join(moves, " "))
}

func printEntry(sfenStr string, entry storage.SolverEntry) {
	if entry.Resigns {
		fmt.Printf("%s -> resign\n", sfenStr)
		return
	}
	fmt.Printf("%s -> %s (score_nega=%d capture_price=%d hum_checkmate=%t)\n",
		sfenStr, entry.BestMove, entry.ScoreNega, entry.CapturePrice, entry.HumCheckmate)
}
