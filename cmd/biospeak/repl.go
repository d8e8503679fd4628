package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/biospeak-go/pkg/biospeak"
)

const prompt = "biospeak> "

// runREPL reads commands until an exit word or end of input. Command
// errors are printed and the session continues.
func runREPL(ctx context.Context, e *biospeak.Engine, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, `BioSpeak shell. Say "help" to list commands, "exit" to leave.`)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res, err := e.HandleContext(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "Error: %s\n", err)
			continue
		}
		fmt.Fprintln(out, res.Message)
		if res.Exit {
			return nil
		}
	}
}
