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

// Package stipulation builds the side-to-move and per-ply requirement
// list that solver.Solve searches against, for the three supported
// problem types.
package stipulation

import (
	"github.com/frankkopp/caissa/internal/solver"
	"github.com/frankkopp/caissa/pkg/types"
)

// DirectMate builds the side and requirement list for a mate-in-n
// problem: White plays, Black replies to every try, alternating for
// n full moves, with the final White move required to deliver mate.
// Requirement list length is 2n: n-1 (Any, AllOrMate) pairs, then a
// final (Any, Mate) pair.
func DirectMate(n int) (types.Side, []solver.Requirement) {
	reqs := make([]solver.Requirement, 0, 2*n)
	for i := 0; i < n-1; i++ {
		reqs = append(reqs, solver.Any, solver.AllOrMate)
	}
	reqs = append(reqs, solver.Any, solver.Mate)
	return types.White, reqs
}

// HelpMate builds the side and requirement list for a help-mate-in-n
// problem: Black moves first and both sides cooperate for n full
// moves (2n plies of Any), and the resulting position - Black to
// move again - must be checkmate. The Mate entry carries no move of
// its own: it only probes the board reached after the 2n cooperative
// plies for "no legal move, king attacked".
func HelpMate(n int) (types.Side, []solver.Requirement) {
	reqs := make([]solver.Requirement, 0, 2*n+1)
	for i := 0; i < n; i++ {
		reqs = append(reqs, solver.Any, solver.Any)
	}
	reqs = append(reqs, solver.Mate)
	return types.Black, reqs
}

// HelpMatePlusHalf builds the side and requirement list for a
// help-mate-in-n-and-a-half problem: White moves first, both sides
// cooperate for n full moves (2n plies of Any), then White plays one
// further candidate move (Any) whose resulting position - Black to
// move - must be checkmate.
func HelpMatePlusHalf(n int) (types.Side, []solver.Requirement) {
	reqs := make([]solver.Requirement, 0, 2*n+2)
	for i := 0; i < n; i++ {
		reqs = append(reqs, solver.Any, solver.Any)
	}
	reqs = append(reqs, solver.Any, solver.Mate)
	return types.White, reqs
}
