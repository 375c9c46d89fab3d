//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// solverConfiguration is a data structure to hold the configuration
// of an instance of the composition solver.
type solverConfiguration struct {
	// StopAtFirstSolution makes the CLI print only the first root
	// solution. Solve itself still searches every root move; the list
	// is cut down after it returns.
	StopAtFirstSolution bool

	// MaxSolutions caps the number of solutions collected at the root;
	// 0 means unlimited.
	MaxSolutions int

	// ProgressLogInterval logs a progress line every N root solutions
	// printed; 0 disables progress logging. Read only by the CLI's
	// print loop, after Solve has already returned - the solver core
	// itself does no I/O.
	ProgressLogInterval int

	// UseCPUProfile enables pprof CPU profiling of the solve via
	// github.com/pkg/profile for the duration of the run.
	UseCPUProfile bool
	CPUProfilePath string
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Solver.StopAtFirstSolution = false
	Settings.Solver.MaxSolutions = 0
	Settings.Solver.ProgressLogInterval = 0
	Settings.Solver.UseCPUProfile = false
	Settings.Solver.CPUProfilePath = "./caissa.pprof"
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSolver() {
}
