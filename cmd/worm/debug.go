package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/sandworm/vm"
)

// runDebugger steps a program interactively. The port buffers output so
// it can be shown alongside the grid after every command, and more input
// for the ? instruction can be queued at the prompt.
func runDebugger(program *vm.Program, opts []vm.Option, input []byte) error {
	port := vm.NewBufferPort(input)
	interp := vm.New(program, append(opts, vm.WithPort(port))...)
	ctx := context.Background()

	show(interp, port)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()

		// "input" keeps the raw text, including leading whitespace.
		if rest, ok := strings.CutPrefix(line, "input "); ok {
			port.Feed([]byte(rest))
			continue
		}

		args := strings.Fields(line)
		cmd := ""
		if len(args) > 0 {
			cmd = args[0]
		}
		switch cmd {
		case "", "step":
			n := 1
			if len(args) > 1 {
				parsed, err := strconv.Atoi(args[1])
				if err != nil || parsed < 1 {
					fmt.Println("usage: step [N]")
					continue
				}
				n = parsed
			}
			if err := step(ctx, interp, n); err != nil {
				fmt.Printf("fault: %v\n", err)
			}
			show(interp, port)
		case "run":
			if err := interp.Run(ctx); err != nil {
				fmt.Printf("fault: %v\n", err)
			}
			show(interp, port)
		case "show":
			show(interp, port)
		case "stack":
			fmt.Printf("stack: %v\n", interp.StackValues())
		case "snapshot":
			if len(args) != 2 {
				fmt.Println("usage: snapshot FILE")
				continue
			}
			if err := writeSnapshot(interp, args[1]); err != nil {
				fmt.Printf("snapshot failed: %v\n", err)
			}
		case "q", "exit", "quit":
			return nil
		case "help":
			fmt.Println("commands: step [N], run, input TEXT, show, stack, snapshot FILE, quit")
		default:
			fmt.Println("unrecognised command (try help)")
		}
	}
}

func step(ctx context.Context, interp *vm.Interpreter, n int) error {
	for ; n > 0 && interp.State() == vm.Running; n-- {
		if err := interp.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func show(interp *vm.Interpreter, port *vm.BufferPort) {
	fmt.Print(interp.Render())
	fmt.Printf("state: %s\n", interp.State())
	fmt.Printf("output: %s\n", port.Output())
}

func writeSnapshot(interp *vm.Interpreter, path string) error {
	data, err := interp.Snapshot().Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Infof("snapshot written to %s", path)
	return nil
}
