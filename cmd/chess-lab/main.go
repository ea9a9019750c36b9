// chess-lab is an interactive rules console: it reads algebraic moves and
// commands from stdin, plays them through the engine, and prints FEN,
// board diagrams, and PGN on demand.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Santicm23/chess-lab/internal/variant"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("chess-lab version %s\n", programVersion)
		os.Exit(0)
	}

	game, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-lab: %v\n", err)
		os.Exit(1)
	}
	applyTags(game)

	if err := run(game, bufio.NewScanner(os.Stdin)); err != nil {
		fmt.Fprintf(os.Stderr, "chess-lab: %v\n", err)
		os.Exit(1)
	}
}

func newGame() (variant.Variant, error) {
	switch strings.ToLower(*variantName) {
	case "standard":
		if *startFEN != "" {
			return variant.NewStandardFromFEN(*startFEN)
		}
		return variant.NewStandard(), nil
	case "chess960":
		if *startFEN == "" {
			return nil, fmt.Errorf("chess960 needs a starting position, pass -fen")
		}
		return variant.NewChess960(*startFEN)
	case "kingcapture":
		if *startFEN != "" {
			return variant.NewKingCaptureFromFEN(*startFEN)
		}
		return variant.NewKingCapture(), nil
	}
	return nil, fmt.Errorf("unknown variant %q", *variantName)
}

func applyTags(game variant.Variant) {
	if *eventTag != "" {
		game.SetTag("Event", *eventTag)
	}
	if *whiteTag != "" {
		game.SetTag("White", *whiteTag)
	}
	if *blackTag != "" {
		game.SetTag("Black", *blackTag)
	}
}

func run(game variant.Variant, in *bufio.Scanner) error {
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if done := execute(game, line); done {
			return in.Err()
		}
	}
	return in.Err()
}

// execute runs one command or move. It reports true on quit.
func execute(game variant.Variant, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return true
	case "fen":
		fmt.Println(game.FEN())
	case "pgn":
		fmt.Println(game.PGN())
	case "board":
		b := game.Board()
		fmt.Print(b.Diagram())
	case "moves":
		for i, m := range game.NextMoves() {
			fmt.Printf("%d: %s\n", i, m)
		}
	case "undo":
		if err := game.Undo(); err != nil {
			fmt.Fprintf(os.Stderr, "undo: %v\n", err)
		}
		report(game)
	case "redo":
		n := 0
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		if err := game.RedoVariant(n); err != nil {
			fmt.Fprintf(os.Stderr, "redo: %v\n", err)
		}
		report(game)
	case "resign":
		game.Resign(game.ToMove())
		report(game)
	case "draw":
		game.SetDrawByAgreement()
		report(game)
	case "flag":
		game.SetLostOnTime(game.ToMove())
		report(game)
	default:
		if _, err := game.MovePiece(fields[0]); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return false
		}
		report(game)
	}
	return false
}

func report(game variant.Variant) {
	if *showBoard {
		b := game.Board()
		fmt.Print(b.Diagram())
	}
	if *quiet {
		return
	}
	status := game.Status()
	if status.Terminal() {
		fmt.Printf("%s (%s)\n", status, status.Result())
		return
	}
	fmt.Printf("%v to move\n", game.ToMove())
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-lab - interactive chess rules console

Usage: chess-lab [options]

Moves are entered in algebraic notation (e4, Nf3, O-O, exd6, e8=Q).
Commands: fen, pgn, board, moves, undo, redo [n], resign, draw, flag, quit

Options:
`)
	flag.PrintDefaults()
}
