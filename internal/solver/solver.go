/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package solver implements the recursive backtracking search that
// proves a stipulation against a board. There is no transposition
// table, no killer/history heuristics and no iterative deepening
// here, unlike the engine's search package: a composition's solution
// tree is exhaustive and exact, not a bounded best-effort estimate,
// so none of that machinery has anywhere to attach.
package solver

import (
	"github.com/frankkopp/caissa/internal/board"
	"github.com/frankkopp/caissa/internal/movegen"
	"github.com/frankkopp/caissa/pkg/types"
)

// Requirement is the per-ply obligation a move must satisfy, as laid
// out by a stipulation's requirement list.
type Requirement uint8

const (
	// Any accepts every pseudo-legal move that does not leave the
	// mover's own king attacked.
	Any Requirement = iota
	// AllOrMate accepts every such move, but the whole branch fails
	// if the position is a stalemate (no legal move exists and the
	// king is not attacked).
	AllOrMate
	// Mate requires the position to be a checkmate: no legal move
	// exists and the king is attacked.
	Mate
)

// Solution is one node of the solution tree: the move played at this
// ply and the subtree of replies that complete the stipulation.
type Solution struct {
	Move     types.Move
	Children []Solution
}

// failure distinguishes the two ways a branch can fail to satisfy
// its Requirement.
type failure uint8

const (
	notFound failure = iota
	illegalMove
)

// outcome is the result of trying to satisfy a Requirement list
// against a board: either every accepting line found so far, or a
// failure reason.
type outcome struct {
	solutions []Solution
	fail      failure
	ok        bool
}

func ok(solutions []Solution) outcome {
	return outcome{solutions: solutions, ok: true}
}

func failNotFound() outcome {
	return outcome{fail: notFound}
}

func failIllegal() outcome {
	return outcome{fail: illegalMove}
}

// Solve tries to satisfy reqs against b and returns every solution
// line found at the root, or false if none exists.
func Solve(b *board.Board, reqs []Requirement) ([]Solution, bool) {
	out := solve(b, reqs)
	if !out.ok {
		return nil, false
	}
	return out.solutions, true
}

// solve implements the per-ply search: try every pseudo-legal move
// that leaves the mover's own king unattacked, recurse into the
// remaining requirements, and collect the moves whose subtrees
// satisfy the rest of reqs.
func solve(b *board.Board, reqs []Requirement) outcome {
	if len(reqs) == 0 {
		return ok(nil)
	}

	req := reqs[0]
	rest := reqs[1:]

	var solutions []Solution
	legalMoveExists := false
	illegalCount := 0

	for _, m := range movegen.Generate(b) {
		child := b.Clone()
		child.ApplyMove(m)
		child.FlipSide()
		if child.KingThreatenedNow() {
			// the side to move in child can capture the mover's king:
			// m left the mover's own king attacked, so m is not legal.
			illegalCount++
			continue
		}
		legalMoveExists = true

		childResult := solve(child, rest)

		switch req {
		case Any:
			if childResult.ok {
				solutions = append(solutions, Solution{Move: m, Children: childResult.solutions})
			}
		case AllOrMate:
			if !childResult.ok {
				// one legal reply fails to continue the line: the
				// whole branch fails, since every reply must work.
				return failNotFound()
			}
			solutions = append(solutions, Solution{Move: m, Children: childResult.solutions})
		case Mate:
			if childResult.ok {
				// a reply exists that completes the remaining
				// requirements: m does not deliver mate after all.
				return failNotFound()
			}
		}
	}

	switch req {
	case Any:
		if len(solutions) == 0 {
			return failNotFound()
		}
		return ok(solutions)

	case AllOrMate:
		if !legalMoveExists {
			if !kingThreatenedAfterFlip(b) {
				// stalemate at an intermediate ply: the original
				// source treats this as a failure for AllOrMate, and
				// that behaviour is preserved here rather than
				// "fixed" to treat stalemate as vacuously satisfying
				// "every reply must continue the line".
				return failNotFound()
			}
			return ok(nil)
		}
		return ok(solutions)

	case Mate:
		if legalMoveExists {
			// every legal reply was tried above; none returned ok (else
			// the loop would already have returned failNotFound()), so
			// no reply escapes and m delivers mate.
			return ok(nil)
		}
		if illegalCount == 0 {
			// no pseudo-legal move exists at all, not even one that
			// self-exposes the king: there is nothing for the side to
			// move to have tried, so this is not a mate.
			return failNotFound()
		}
		if !kingThreatenedAfterFlip(b) {
			return failNotFound()
		}
		return ok(nil)

	default:
		return failNotFound()
	}
}

// kingThreatenedAfterFlip reports whether the side that was to move
// on b is, after flipping the side to move, in check - i.e. whether
// the position on b was a legitimate check rather than a stalemate.
func kingThreatenedAfterFlip(b *board.Board) bool {
	probe := b.Clone()
	probe.FlipSide()
	return probe.KingThreatenedNow()
}
