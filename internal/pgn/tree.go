// Package pgn records the moves of one game as a branching, navigable
// tree and renders them as PGN move text with variations. Nodes live in
// an arena indexed by position, so parent links and the cursor are plain
// integers rather than pointer cycles.
package pgn

import (
	"fmt"
	"strings"

	"github.com/Santicm23/chess-lab/internal/chess"
)

// Snapshot captures the scalar game-state fields as they were before a
// move, so undoing the move can restore them exactly.
type Snapshot struct {
	HalfmoveClock int
	FullmoveNum   int
	EnPassant     chess.Square // NoSquare when unset
	Rights        chess.CastlingRights
	Status        chess.GameStatus
}

type node struct {
	move     chess.Move
	prior    Snapshot
	parent   int
	children []int
}

// Tree is the move-history tree. Index 0 is a synthetic root before the
// first move; the cursor points at the most recently applied move, or at
// the root when none is applied.
type Tree struct {
	nodes  []node
	cursor int
}

// NewTree returns an empty tree positioned before the first move.
func NewTree() *Tree {
	return &Tree{nodes: []node{{parent: -1}}}
}

// AddMove records a move played from the cursor position. If the cursor
// already has a child with an identical move the cursor simply advances
// to it, so replaying a move after an undo does not spawn a duplicate
// variation. Otherwise the move becomes a new child: the mainline if it
// is the first, a variation after that.
func (t *Tree) AddMove(m chess.Move, prior Snapshot) {
	for _, child := range t.nodes[t.cursor].children {
		if t.nodes[child].move == m {
			t.cursor = child
			return
		}
	}
	t.nodes = append(t.nodes, node{move: m, prior: prior, parent: t.cursor})
	idx := len(t.nodes) - 1
	t.nodes[t.cursor].children = append(t.nodes[t.cursor].children, idx)
	t.cursor = idx
}

// HasPrev reports whether a move precedes the cursor.
func (t *Tree) HasPrev() bool {
	return t.cursor != 0
}

// HasNext reports whether a continuation follows the cursor.
func (t *Tree) HasNext() bool {
	return len(t.nodes[t.cursor].children) > 0
}

// Current returns the move at the cursor and its pre-move snapshot.
// The second result is false at the root.
func (t *Tree) Current() (chess.Move, Snapshot, bool) {
	if t.cursor == 0 {
		return chess.Move{}, Snapshot{}, false
	}
	n := t.nodes[t.cursor]
	return n.move, n.prior, true
}

// Back moves the cursor to the parent node. It reports false at the root.
func (t *Tree) Back() bool {
	if t.cursor == 0 {
		return false
	}
	t.cursor = t.nodes[t.cursor].parent
	return true
}

// NextMove returns the mainline continuation at the cursor without
// moving it.
func (t *Tree) NextMove() (chess.Move, bool) {
	return t.NextMoveVariant(0)
}

// NextMoveVariant returns the n-th continuation at the cursor without
// moving it. Index 0 is the mainline.
func (t *Tree) NextMoveVariant(n int) (chess.Move, bool) {
	kids := t.nodes[t.cursor].children
	if n < 0 || n >= len(kids) {
		return chess.Move{}, false
	}
	return t.nodes[kids[n]].move, true
}

// AllNextMoves returns every continuation recorded at the cursor,
// mainline first.
func (t *Tree) AllNextMoves() []chess.Move {
	kids := t.nodes[t.cursor].children
	out := make([]chess.Move, 0, len(kids))
	for _, child := range kids {
		out = append(out, t.nodes[child].move)
	}
	return out
}

// Len returns the number of recorded moves.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Notation renders the whole tree as PGN move text: numbered mainline
// with parenthesized variations inline after the move they branch from,
// followed by the result token when status is terminal.
func (t *Tree) Notation(status chess.GameStatus) string {
	toks := t.continuationTokens(0, true)
	if r := status.Result(); r != "" {
		toks = append(toks, r)
	}
	return joinTokens(toks)
}

// continuationTokens emits the token stream for the subtree hanging off
// nodes[idx], starting with its mainline child.
func (t *Tree) continuationTokens(idx int, needNumber bool) []string {
	var toks []string
	for {
		kids := t.nodes[idx].children
		if len(kids) == 0 {
			return toks
		}
		main := kids[0]
		toks = append(toks, t.moveTokens(main, needNumber)...)
		needNumber = false
		for _, alt := range kids[1:] {
			toks = append(toks, "(")
			toks = append(toks, t.moveTokens(alt, true)...)
			toks = append(toks, t.continuationTokens(alt, false)...)
			toks = append(toks, ")")
			needNumber = true
		}
		idx = main
	}
}

func (t *Tree) moveTokens(idx int, needNumber bool) []string {
	n := t.nodes[idx]
	switch {
	case n.move.Piece.Colour == chess.White:
		return []string{fmt.Sprintf("%d.", n.prior.FullmoveNum), n.move.String()}
	case needNumber:
		return []string{fmt.Sprintf("%d...", n.prior.FullmoveNum), n.move.String()}
	}
	return []string{n.move.String()}
}

// joinTokens spaces tokens apart, keeping variation parens snug against
// their contents.
func joinTokens(toks []string) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 && tok != ")" && toks[i-1] != "(" {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok)
	}
	return sb.String()
}
