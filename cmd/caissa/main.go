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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"

	"github.com/frankkopp/caissa/internal/board"
	"github.com/frankkopp/caissa/internal/config"
	"github.com/frankkopp/caissa/internal/format"
	"github.com/frankkopp/caissa/internal/logging"
	"github.com/frankkopp/caissa/internal/parser"
	"github.com/frankkopp/caissa/internal/solver"
	"github.com/frankkopp/caissa/internal/stipulation"
	"github.com/frankkopp/caissa/internal/util"
	"github.com/frankkopp/caissa/pkg/types"
)

func main() {
	os.Exit(run())
}

// run implements the CLI. It returns the process exit code rather
// than calling os.Exit itself, so it stays testable.
func run() int {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	directMate := flag.Int("directmate", 0, "solve a mate-in-n problem, White to move")
	helpMate := flag.Int("helpmate", 0, "solve a help-mate-in-n problem, Black to move")
	helpMatePlusHalf := flag.Int("helpmate+1", 0, "solve a help-mate-in-n-and-a-half problem, White to move")
	boardFlag := flag.String("board", "", "board position in the board textual format\nif absent, read from standard input")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the solve to the configured profile path")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog()

	side, reqs, err := stipulationFromFlags(*directMate, *helpMate, *helpMatePlusHalf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	input, err := readBoard(*boardFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading position:", err)
		return 1
	}

	pieces, err := parser.ParseBoard(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return 1
	}

	b := board.New(pieces, side)

	if *cpuProfile || config.Settings.Solver.UseCPUProfile {
		profileDir, err := util.ResolveCreateFolder(config.Settings.Solver.CPUProfilePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cpu profile directory:", err)
			return 1
		}
		stop := profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir))
		defer stop.Stop()
	}

	log.Info("solving with ", len(reqs), " ply requirement list")
	solutions, ok := solver.Solve(b, reqs)
	if !ok {
		fmt.Fprintln(os.Stderr, "no solutions")
		return 1
	}

	solutions = limitSolutions(solutions)
	printSolutions(log, solutions)
	return 0
}

// printSolutions writes each root solution's formatted tree to
// standard output, logging a progress line every
// Settings.Solver.ProgressLogInterval solutions when that is set.
func printSolutions(log interface{ Info(...interface{}) }, solutions []solver.Solution) {
	interval := config.Settings.Solver.ProgressLogInterval
	for i, s := range solutions {
		fmt.Print(format.Solutions([]solver.Solution{s}))
		if interval > 0 && (i+1)%interval == 0 {
			log.Info("printed ", util.FormatCount(i+1), " of ", util.FormatCount(len(solutions)), " solutions")
		}
	}
}

// stipulationFromFlags picks the one stipulation flag that was given
// a positive value and builds its side and requirement list. Exactly
// one of the three flags must be set; anything else is a missing or
// ambiguous stipulation.
func stipulationFromFlags(directMate, helpMate, helpMatePlusHalf int) (types.Side, []solver.Requirement, error) {
	count := 0
	if directMate > 0 {
		count++
	}
	if helpMate > 0 {
		count++
	}
	if helpMatePlusHalf > 0 {
		count++
	}
	switch {
	case count == 0:
		return types.White, nil, fmt.Errorf("missing stipulation: one of --directmate, --helpmate, --helpmate+1 is required")
	case count > 1:
		return types.White, nil, fmt.Errorf("only one of --directmate, --helpmate, --helpmate+1 may be given")
	}

	switch {
	case directMate > 0:
		side, reqs := stipulation.DirectMate(directMate)
		return side, reqs, nil
	case helpMate > 0:
		side, reqs := stipulation.HelpMate(helpMate)
		return side, reqs, nil
	default:
		side, reqs := stipulation.HelpMatePlusHalf(helpMatePlusHalf)
		return side, reqs, nil
	}
}

// readBoard returns boardFlag if non-empty, otherwise reads the
// entire standard input.
func readBoard(boardFlag string) (string, error) {
	if boardFlag != "" {
		return boardFlag, nil
	}
	data, err := ioutil.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// limitSolutions applies the configured StopAtFirstSolution and
// MaxSolutions settings to the root solution list.
func limitSolutions(solutions []solver.Solution) []solver.Solution {
	if config.Settings.Solver.StopAtFirstSolution && len(solutions) > 1 {
		solutions = solutions[:1]
	}
	if n := config.Settings.Solver.MaxSolutions; n > 0 && len(solutions) > n {
		solutions = solutions[:n]
	}
	return solutions
}
