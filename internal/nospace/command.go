package nospace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCommand is wrapped by every error returned for a block that is not a cd or ls invocation.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one parsed transcript block.
type Command interface {
	command()
}

// ChangeToRoot is `cd /`.
type ChangeToRoot struct{}

// ChangeUp is `cd ..`.
type ChangeUp struct{}

// ChangeInto is `cd <name>`.
type ChangeInto struct {
	// Name is the child directory to enter.
	Name string
}

// List is `ls` together with its output.
type List struct {
	// Dirs holds the names of the listed subdirectories.
	Dirs []string
	// Files holds the listed files.
	Files []File
}

func (ChangeToRoot) command() {}
func (ChangeUp) command() {}
func (ChangeInto) command() {}
func (List) command() {}

// UnknownCommandError reports a block whose invocation matched no known command.
type UnknownCommandError struct {
	Invocation string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownCommand, e.Invocation)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}

// Parse splits a transcript on the `$` marker and parses every block.
// Blocks that cannot be parsed are skipped and reported in the returned errors;
// they never stop the remaining blocks from being parsed.
func Parse(transcript string) ([]Command, []error) {
	var (
		cmds    []Command
		skipped []error
	)

	for block := range strings.SplitSeq(transcript, "$") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		cmd, err := ParseBlock(block)
		if err != nil {
			skipped = append(skipped, err)

			continue
		}

		cmds = append(cmds, cmd)
	}

	return cmds, skipped
}

// ParseBlock parses a single command block: the invocation on the first line,
// followed by any output lines.
func ParseBlock(block string) (Command, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	invocation := strings.Fields(lines[0])

	switch {
	case len(invocation) == 2 && invocation[0] == "cd":
		switch name := invocation[1]; name {
		case "/":
			return ChangeToRoot{}, nil
		case "..":
			return ChangeUp{}, nil
		default:
			return ChangeInto{Name: name}, nil
		}
	case len(invocation) == 1 && invocation[0] == "ls":
		return parseListing(lines[1:]), nil
	default:
		return nil, &UnknownCommandError{Invocation: strings.TrimSpace(lines[0])}
	}
}

// parseListing turns ls output into a List. Lines that are neither
// `dir <name>` nor `<size> <name>` are dropped.
func parseListing(lines []string) List {
	var list List

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}

		if fields[0] == "dir" {
			list.Dirs = append(list.Dirs, fields[1])

			continue
		}

		size, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || size < 0 {
			continue
		}

		list.Files = append(list.Files, File{Name: fields[1], Size: size})
	}

	return list
}
