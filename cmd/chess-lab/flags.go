// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Game setup
	variantName = flag.String("variant", "standard", "Variant to play: standard, chess960, kingcapture")
	startFEN    = flag.String("fen", "", "Starting position as FEN (required for chess960)")

	// Header tags
	eventTag = flag.String("event", "", "PGN Event tag")
	whiteTag = flag.String("white", "", "PGN White tag")
	blackTag = flag.String("black", "", "PGN Black tag")

	// Display
	showBoard = flag.Bool("board", false, "Print the board after every move")
	quiet     = flag.Bool("q", false, "Suppress the status line after every move")

	help    = flag.Bool("h", false, "Show usage information")
	version = flag.Bool("version", false, "Show version information")
)
