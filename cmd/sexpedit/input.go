package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readInput reads the single input named by args: a file path, "-" for
// stdin, or stdin when args is empty.  It returns the text and the path
// it came from ("" for stdin).
func readInput(cc *cli.Context, args []string) (string, string, error) {
	switch len(args) {
	case 0:
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(d), "", nil
	case 1:
		if args[0] == "-" {
			d, err := io.ReadAll(cc.In)
			if err != nil {
				return "", "", fmt.Errorf("error reading stdin: %w", err)
			}
			return string(d), "", nil
		}
		d, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("could not read %q: %w", args[0], err)
		}
		return string(d), args[0], nil
	default:
		return "", "", fmt.Errorf("%w: expected at most one file, got %v", cli.ErrUsage, args)
	}
}

// eachInput runs f once per named file, or once on stdin when args is
// empty.
func eachInput(cc *cli.Context, args []string, f func(name, text string) error) error {
	if len(args) == 0 {
		text, _, err := readInput(cc, nil)
		if err != nil {
			return err
		}
		return f("", text)
	}
	for _, file := range args {
		text, name, err := readInput(cc, []string{file})
		if err != nil {
			return err
		}
		if err := f(name, text); err != nil {
			return err
		}
	}
	return nil
}

// writeBack replaces the file's content, or writes to cc.Out when the
// input came from stdin.
func writeBack(cc *cli.Context, name, text string) error {
	if name == "" {
		_, err := io.WriteString(cc.Out, text)
		return err
	}
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	return nil
}
