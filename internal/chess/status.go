package chess

// Outcome is the top-level game result.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
	DrawOutcome
)

// StatusReason explains how a terminal outcome was reached.
type StatusReason int

const (
	NoReason StatusReason = iota
	Checkmate
	Resignation
	Time
	Stalemate
	InsufficientMaterial
	ThreefoldRepetition
	FiftyMoveRule
	Agreement
)

// String returns the string representation of a status reason.
func (r StatusReason) String() string {
	names := []string{
		"", "checkmate", "resignation", "time", "stalemate",
		"insufficient material", "threefold repetition",
		"fifty-move rule", "agreement",
	}
	if int(r) < len(names) {
		return names[r]
	}
	return "unknown"
}

// GameStatus pairs an outcome with its reason. The zero value is a game
// in progress. Once terminal it stays terminal; only undoing a move may
// restore an earlier value.
type GameStatus struct {
	Outcome Outcome
	Reason  StatusReason
}

// Terminal reports whether the game has ended.
func (s GameStatus) Terminal() bool {
	return s.Outcome != InProgress
}

// Win builds a win status for the given colour.
func Win(c Colour, reason StatusReason) GameStatus {
	if c == White {
		return GameStatus{Outcome: WhiteWins, Reason: reason}
	}
	return GameStatus{Outcome: BlackWins, Reason: reason}
}

// Draw builds a draw status.
func Draw(reason StatusReason) GameStatus {
	return GameStatus{Outcome: DrawOutcome, Reason: reason}
}

// Result returns the PGN result token, or "" while in progress.
func (s GameStatus) Result() string {
	switch s.Outcome {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case DrawOutcome:
		return "1/2-1/2"
	}
	return ""
}

// String returns a human-readable description of the status.
func (s GameStatus) String() string {
	switch s.Outcome {
	case WhiteWins:
		return "White wins by " + s.Reason.String()
	case BlackWins:
		return "Black wins by " + s.Reason.String()
	case DrawOutcome:
		return "draw by " + s.Reason.String()
	}
	return "in progress"
}
