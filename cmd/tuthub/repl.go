package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tuthub/tuthub/internal/command"
)

// executor is the part of logic.Logic the REPL drives.
type executor interface {
	Execute(ctx context.Context, text string) (command.Result, error)
}

const prompt = "> "

// runREPL reads one command per line from in until exit, EOF or ctx is
// cancelled. Feedback and error messages go to out.
func runREPL(ctx context.Context, app executor, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, prompt)
			continue
		}

		result, err := app.Execute(ctx, line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			fmt.Fprint(out, prompt)
			continue
		}

		fmt.Fprintln(out, result.Feedback)
		if result.Exit {
			return nil
		}
		fmt.Fprint(out, prompt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("runREPL: read input: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}
