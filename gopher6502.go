// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher6502/demo"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/gui"
	"github.com/jetsetilly/gopher6502/gui/sdlplay"
	"github.com/jetsetilly/gopher6502/gui/termplay"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/localise"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/performance"
	"github.com/jetsetilly/gopher6502/performance/limiter"
	"github.com/jetsetilly/gopher6502/programloader"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var g gui.GUI
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if g != nil {
				g.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			if g != nil {
				g.Destroy(os.Stderr)
				g = nil
			}

			c, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				g = c
				sync.creation <- g
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if g != nil {
					g.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if g != nil {
				g.Service()
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEMO", "DISASM", "PERFORMANCE", "BUILTINS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, os.Stdout)

	case "DEMO":
		err = demonstrate(md, sync)

	case "DISASM":
		err = disasm(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "BUILTINS":
		err = builtins(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.Summary())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// load the program named by the first remaining argument. the built-in
// countdown program is used if there are no arguments
func loadProgram(md *modalflag.Modes, format string) (programloader.Loader, error) {
	var pl programloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		pl = programloader.NewLoader("countdown", programloader.FormatBuiltin)
	case 1:
		pl = programloader.NewLoader(md.GetArg(0), format)
	default:
		return pl, fmt.Errorf("too many arguments for %s mode", md)
	}

	err := pl.Load()
	if err != nil {
		return pl, err
	}

	return pl, nil
}

var formats = []string{
	programloader.FormatAuto,
	programloader.FormatBinary,
	programloader.FormatHex,
	programloader.FormatBuiltin,
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	format := md.AddChoice("format", programloader.FormatAuto, formats, "format of program")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	echo := md.AddBool("log", false, "echo log entries to stderr")
	limit := md.AddInt("limit", 0, "halt after this many instructions (0 for no limit)")
	rate := md.AddInt("rate", 0, "instructions per second (0 for unlimited)")
	memvizFile := md.AddString("memviz", "", "write a memviz graph of the final CPU state to file")
	stats := md.AddBool("statsview", false, "run the statsview server")
	statsAddress := md.AddString("statsaddr", statsview.DefaultAddress, "address of the statsview server")
	md.AdditionalHelp("the program is loaded at $8000. the built-in countdown program is run if no file is given")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		err = statsview.Launch(output, *statsAddress)
		if err != nil {
			return err
		}
	}

	pl, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	mc := cpu.NewCPU()
	mc.Quiet = !*echo
	err = mc.Load(pl.Data)
	if err != nil {
		return err
	}
	mc.Reset()

	var lim *limiter.Limiter
	if *rate > 0 {
		lim, err = limiter.NewLimiter(*rate)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	hook := cpu.StepHookFunc(func(mc *cpu.CPU) cpu.StepResult {
		if *trace && mc.LastResult.Final {
			fmt.Fprintln(output, disassembly.FormatResult(mc.LastResult))
		}
		if *limit > 0 && mc.Instructions >= *limit {
			return cpu.Halt
		}
		if lim != nil {
			lim.Wait()
		}
		return cpu.Continue
	})

	err = mc.Run(hook)

	// the hook is not called after the final instruction
	if *trace && mc.LastResult.Final && mc.Halted {
		fmt.Fprintln(output, disassembly.FormatResult(mc.LastResult))
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(output, mc.String())
	fmt.Fprintln(output, localise.Sprintf("%s: %d instructions in %d cycles", pl.ShortName(), mc.Instructions, mc.Cycles))

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, mc.Snapshot())
		if err != nil {
			return err
		}
	}

	return nil
}

func writeMemviz(filename string, state cpu.State) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, &state)
	logger.Logf(logger.Allow, "memviz", "CPU state written to %s", filename)

	return nil
}

func demonstrate(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddChoice("display", "sdl", []string{"sdl", "term"}, "display type")
	scale := md.AddInt("scale", 16, "size of each pixel in the sdl window")
	seed := md.AddInt64("seed", 0, "seed for random numbers (0 for random seed)")
	rate := md.AddInt("rate", 20000, "instructions per second (0 for unlimited)")
	format := md.AddChoice("format", programloader.FormatAuto, formats, "format of program")
	md.AdditionalHelp("the built-in demo program is run if no file is given")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program := demo.Program
	if len(md.RemainingArgs()) > 0 {
		pl, err := loadProgram(md, *format)
		if err != nil {
			return err
		}
		program = pl.Data
	}

	con := demo.NewConsole(*seed)
	if *rate > 0 {
		lim, err := limiter.NewLimiter(*rate)
		if err != nil {
			return err
		}
		defer lim.Stop()
		con.SetLimiter(lim)
	}

	sync.creator <- func() (gui.GUI, error) {
		switch *display {
		case "term":
			tp, err := termplay.NewTermPlay(con, os.Stdin, os.Stdout)
			if err != nil {
				return nil, err
			}
			return tp, nil
		default:
			scr, err := sdlplay.NewSdlPlay(con, *scale)
			if err != nil {
				return nil, err
			}
			return scr, nil
		}
	}

	var g gui.GUI
	select {
	case g = <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-g.Quit():
			cancel()
		case <-ctx.Done():
		}
	}()

	return con.Run(ctx, program)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	format := md.AddChoice("format", programloader.FormatAuto, formats, "format of program")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pl, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	dsm := disassembly.FromProgram(pl.Data, addresses.Origin)
	return dsm.Write(output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	})
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	format := md.AddChoice("format", programloader.FormatAuto, formats, "format of program")
	duration := md.AddString("duration", "5s", "run duration (with an additional 's' or 'm')")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	pl, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	res, err := performance.Check(nil, prf, pl.Data, *duration)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, localise.Sprintf("%s: %.2f MIPS (%d instructions in %d runs)",
		pl.ShortName(), res.IPS()/1000000, res.Instructions, res.Runs))

	return nil
}

func builtins(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, b := range programloader.Builtins() {
		fmt.Fprintf(output, "%-12s %s\n", b.Name, strings.TrimSpace(b.Description))
	}

	return nil
}
