// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package script replays recorded drawing sessions.
//
// A script is a line-oriented list of commands:
//
//	# draw a filled red circle and take it back
//	mode circle
//	color #ff0000
//	fill on
//	down 50 50
//	move 60 50
//	up 70 50
//	undo
//	save out.png
//
// Pointer commands take canvas coordinates. Style commands (color, rgb,
// thickness, fill) set the pen read by subsequent pointer events, as the
// sliders of a window would.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
)

// ErrSyntax is returned for malformed script lines.
var ErrSyntax = errors.New("script: syntax error")

// Op is a script command.
type Op int

// Script commands.
const (
	OpDown Op = iota
	OpMove
	OpUp
	OpMode
	OpColor
	OpThickness
	OpFill
	OpUndo
	OpRedo
	OpClear
	OpSave
)

var opNames = [...]string{
	OpDown:      "down",
	OpMove:      "move",
	OpUp:        "up",
	OpMode:      "mode",
	OpColor:     "color",
	OpThickness: "thickness",
	OpFill:      "fill",
	OpUndo:      "undo",
	OpRedo:      "redo",
	OpClear:     "clear",
	OpSave:      "save",
}

// String returns the command keyword.
func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one parsed script line. Only the field matching Op is set.
type Command struct {
	Line      int
	Op        Op
	Point     image.Point
	Mode      sketch.Mode
	Color     sketch.Color
	Thickness int
	Fill      bool
	Path      string
}

// Parse reads a whole script. Blank lines and '#' comments are skipped.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := stripComment(strings.Fields(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseLine(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return cmds, nil
}

// ParseString parses a script held in memory.
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

// stripComment drops the fields from the first one starting with '#'.
// The argument of color is a hex value, not a comment.
func stripComment(fields []string) []string {
	for i, f := range fields {
		if !strings.HasPrefix(f, "#") {
			continue
		}
		if i == 1 && strings.EqualFold(fields[0], "color") {
			continue
		}
		return fields[:i]
	}
	return fields
}

func parseLine(f []string) (Command, error) {
	keyword, args := strings.ToLower(f[0]), f[1:]

	switch keyword {
	case "down", "move", "up":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%s: want x y", keyword)
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%s: x: %w", keyword, err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%s: y: %w", keyword, err)
		}
		op := map[string]Op{"down": OpDown, "move": OpMove, "up": OpUp}[keyword]
		return Command{Op: op, Point: image.Pt(x, y)}, nil

	case "mode":
		if len(args) != 1 {
			return Command{}, errors.New("mode: want one name")
		}
		m, err := sketch.ParseMode(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpMode, Mode: m}, nil

	case "color":
		if len(args) != 1 {
			return Command{}, errors.New("color: want #rrggbb")
		}
		c, err := sketch.ParseHex(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpColor, Color: c}, nil

	case "rgb":
		if len(args) != 3 {
			return Command{}, errors.New("rgb: want r g b")
		}
		var ch [3]uint8
		for i, a := range args {
			v, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return Command{}, fmt.Errorf("rgb: %w", err)
			}
			ch[i] = uint8(v)
		}
		return Command{Op: OpColor, Color: sketch.RGB(ch[0], ch[1], ch[2])}, nil

	case "thickness":
		if len(args) != 1 {
			return Command{}, errors.New("thickness: want n")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("thickness: %w", err)
		}
		return Command{Op: OpThickness, Thickness: n}, nil

	case "fill":
		if len(args) != 1 {
			return Command{}, errors.New("fill: want on or off")
		}
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			return Command{Op: OpFill, Fill: true}, nil
		case "off", "false", "0":
			return Command{Op: OpFill, Fill: false}, nil
		}
		return Command{}, fmt.Errorf("fill: %q is not on or off", args[0])

	case "undo", "redo", "clear":
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%s: takes no arguments", keyword)
		}
		op := map[string]Op{"undo": OpUndo, "redo": OpRedo, "clear": OpClear}[keyword]
		return Command{Op: op}, nil

	case "save":
		if len(args) != 1 {
			return Command{}, errors.New("save: want a path")
		}
		return Command{Op: OpSave, Path: args[0]}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", f[0])
}
