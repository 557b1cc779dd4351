// Worm CLI - the main entry point for running SandWorm programs
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/sandworm/manifest"
	"github.com/chazu/sandworm/trace"
	"github.com/chazu/sandworm/vm"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("worm")

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	interactive := flag.Bool("i", false, "Start interactive debugger")
	limit := flag.Uint64("limit", 0, "Step limit, 0 = unlimited")
	dirName := flag.String("dir", "", "Initial direction: east, west, north or south")
	tracePath := flag.String("trace", "", "Record an execution trace to a SQLite database")
	manifestDir := flag.String("manifest", "", "Load run configuration from DIR/worm.toml")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: worm [options] [source_file [input_file]]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a SandWorm program to completion, or steps it interactively.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  worm prog.worm                 # Run, reading ? input from stdin\n")
		fmt.Fprintf(os.Stderr, "  worm prog.worm input.bin       # Run with input from a file\n")
		fmt.Fprintf(os.Stderr, "  worm -i prog.worm              # Step through interactively\n")
		fmt.Fprintf(os.Stderr, "  worm -trace run.db prog.worm   # Record every tick to run.db\n")
		fmt.Fprintf(os.Stderr, "  worm -manifest .               # Run per ./worm.toml\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	cfg := runConfig{
		direction: vm.East,
		stepLimit: *limit,
		tracePath: *tracePath,
	}

	sourcePath := flag.Arg(0)
	inputPath := flag.Arg(1)

	if *manifestDir != "" {
		m, err := manifest.Load(*manifestDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.direction = m.Direction()
		if cfg.stepLimit == 0 {
			cfg.stepLimit = m.Run.StepLimit
		}
		if cfg.tracePath == "" {
			cfg.tracePath = m.TracePath()
		}
		if sourcePath == "" {
			sourcePath = m.SourcePath()
		}
		if inputPath == "" {
			inputPath = m.InputPath()
		}
	}
	if *dirName != "" {
		d, err := vm.ParseDirection(*dirName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.direction = d
	}
	if sourcePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	program, err := vm.LoadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Infof("loaded %s, start %v, bounds %+v", sourcePath, program.Start, program.Bounds)

	var input []byte
	if inputPath != "" {
		input, err = os.ReadFile(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := []vm.Option{vm.WithDirection(cfg.direction)}
	if cfg.stepLimit > 0 {
		opts = append(opts, vm.WithStepLimit(cfg.stepLimit))
	}
	if cfg.tracePath != "" {
		rec, err := trace.Open(cfg.tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer rec.Close()
		opts = append(opts, vm.WithTickFunc(rec.Record))
	}

	if *interactive {
		if err := runDebugger(program, opts, input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runBatch(program, opts, input, inputPath != ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runConfig holds the merged manifest and flag settings.
type runConfig struct {
	direction vm.Direction
	stepLimit uint64
	tracePath string
}

// runBatch executes the program to completion. Input comes from the
// given bytes when an input file was supplied, otherwise from stdin;
// output streams to stdout either way.
func runBatch(program *vm.Program, opts []vm.Option, input []byte, haveInput bool) error {
	var port vm.Port
	if haveInput {
		port = vm.NewStreamPort(bytes.NewReader(input), os.Stdout)
	} else {
		port = vm.NewStreamPort(os.Stdin, os.Stdout)
	}
	interp := vm.New(program, append(opts, vm.WithPort(port))...)

	if err := interp.Run(context.Background()); err != nil {
		return err
	}
	log.Infof("halted after %d steps", interp.Steps())
	return nil
}
