// Command naitou-trace plays one game against the engine from the command
// line: it applies a fixed sequence of HUM moves, printing COM's reply (and
// the evaluation that produced it) after each one, and optionally saves
// the session (handicap plus the HUM moves played) under an id. It does
// not load or resume saved sessions.
package main

import (
	"flag"
	"fmt"
	"io"
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
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	verbose     = flag.Bool("v", false, "log every evaluation step to stderr")
	handicapFl  = flag.String("handicap", "hum-sente-even", "starting handicap, see internal/shogi.ParseHandicap")
	movesFl     = flag.String("moves", "", "space-separated HUM moves in sfen notation, e.g. \"7g7f 2g2f\"")
	saveSession = flag.String("save-session", "", "if set, persist the finished game under this session id")
	dbDir       = flag.String("db", "", "database directory (defaults to the platform data dir)")
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

	handicap, err := shogi.ParseHandicap(*handicapFl)
	if err != nil {
		log.Fatal(err)
	}

	var logWriter io.Writer = io.Discard
	if *verbose {
		logWriter = os.Stderr
	}

	eng, resp := engine.New(handicap, logWriter)
	if resp != nil {
		printResponse("opening", resp)
		if isTerminal(resp) {
			return
		}
	}

	var humMoveTokens []string
	if *movesFl != "" {
		humMoveTokens = strings.Fields(*movesFl)
	}

	var played []string
	for _, tok := range humMoveTokens {
		m, err := sfen.DecodeMove(tok)
		if err != nil {
			log.Fatalf("decoding move %q: %v", tok, err)
		}

		resp, err := eng.DoStep(m)
		if err != nil {
			log.Fatalf("playing %s: %v", tok, err)
		}
		played = append(played, tok)
		printResponse(tok, resp)
		if isTerminal(resp) {
			break
		}
	}

	if *saveSession != "" {
		st, err := openStorage(*dbDir)
		if err != nil {
			log.Fatal(err)
		}
		defer st.Close()

		sess := storage.Session{
			ID:       *saveSession,
			Handicap: int(handicap),
			HumMoves: played,
		}
		if err := st.SaveSession(sess); err != nil {
			log.Fatalf("saving session: %v", err)
		}
		fmt.Printf("session %q saved\n", *saveSession)
	}
}

func openStorage(dir string) (*storage.Storage, error) {
	if dir == "" {
		return storage.NewStorage()
	}
	return storage.NewStorageAt(dir)
}

func printResponse(label string, resp engine.EngineResponse) {
	switch r := resp.(type) {
	case engine.MoveResponse:
		fmt.Printf("%s -> com plays %s\n", label, sfen.EncodeMove(r.ComMove))
	case engine.ComWinResponse:
		fmt.Printf("%s -> com plays %s, hum is checkmated\n", label, sfen.EncodeMove(r.ComMove))
	case engine.HumWinResponse:
		fmt.Printf("%s -> com resigns\n", label)
	case engine.HumSuicideResponse:
		fmt.Printf("%s -> hum move leaves its own king hanging\n", label)
	}
}

func isTerminal(resp engine.EngineResponse) bool {
	switch resp.(type) {
	case engine.ComWinResponse, engine.HumWinResponse, engine.HumSuicideResponse:
		return true
	}
	return false
}
