//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/timburks/calc/accumulator"
	"github.com/timburks/calc/commander"
	"github.com/timburks/calc/screen"
)

type args struct {
	Eval  string `arg:"--eval" help:"run a lisp script, print the display and exit"`
	Log   string `arg:"--log" help:"log file (default $HOME/.calclog)"`
	Tape  string `arg:"--tape" help:"write the tape to this file on exit and with :w"`
	Debug bool   `arg:"--debug" help:"show events in the message bar"`
}

func (args) Description() string {
	return "calc is a four-function calculator for the terminal"
}

// parseArgs parses command-line arguments into args.
func parseArgs(argv []string) (args, error) {
	var parsed args

	parser, err := arg.NewParser(arg.Config{Program: "calc"}, &parsed)
	if err != nil {
		return args{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(argv) > 1 {
		cmdArgs = argv[1:]
	}

	err = parser.Parse(cmdArgs)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		return args{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// evalScript runs a script headless and prints the final display.
func evalScript(c *commander.Commander, path string, out io.Writer) error {
	_, err := c.EvalFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, c.GetCalculator().GetDisplay())
	return err
}

// runScript runs a script headless. The log goes to the --log file, or
// nowhere, so that stdout holds only the final display. The tape is
// written whether or not the script succeeds.
func runScript(c *commander.Commander, a args, out io.Writer) error {
	if a.Log == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := openLog(a.Log)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}
	defer writeTape(c, a.Tape)
	return evalScript(c, a.Eval, out)
}

func openLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return f, nil
}

func writeTape(c *commander.Commander, path string) {
	if path == "" {
		return
	}
	if err := c.GetCalculator().GetTape().WriteFile(path); err != nil {
		log.Output(1, err.Error())
	}
}

func main() {
	a, err := parseArgs(os.Args)
	if err != nil {
		log.Output(1, err.Error())
		os.Exit(2)
	}

	// The accumulator holds all calculation state.
	acc := accumulator.NewAccumulator()

	// The commander converts user inputs into commands for the accumulator.
	c := commander.NewCommander(acc)
	c.SetDebug(a.Debug)
	c.SetTapeFile(a.Tape)

	if a.Eval != "" {
		// Run a calc script and exit.
		if err = runScript(c, a, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Open a log file.
	logName := a.Log
	if logName == "" {
		logName = os.Getenv("HOME") + "/.calclog"
	}
	f, err := openLog(logName)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()
	defer writeTape(c, a.Tape)

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(acc, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
