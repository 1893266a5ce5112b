// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import (
	"context"
	"fmt"

	"github.com/gogpu/sketch"
)

// Player applies commands to an engine whose style source is controls.
type Player struct {
	engine   *sketch.Engine
	controls *sketch.Controls
}

// NewPlayer creates a player. controls must be the style source e was
// created with, or style commands have no effect on drawing.
func NewPlayer(e *sketch.Engine, controls *sketch.Controls) *Player {
	return &Player{engine: e, controls: controls}
}

// Apply executes one command. Only save can fail.
func (p *Player) Apply(cmd Command) error {
	e := p.engine
	switch cmd.Op {
	case OpDown:
		e.PointerDown(cmd.Point)
	case OpMove:
		e.PointerMove(cmd.Point)
	case OpUp:
		e.PointerUp(cmd.Point)
	case OpMode:
		e.SetMode(cmd.Mode)
	case OpColor:
		p.controls.SetColor(cmd.Color)
	case OpThickness:
		p.controls.SetThickness(cmd.Thickness)
	case OpFill:
		p.controls.SetFilled(cmd.Fill)
	case OpUndo:
		e.Undo()
	case OpRedo:
		e.Redo()
	case OpClear:
		e.Clear()
	case OpSave:
		if err := e.Save(cmd.Path); err != nil {
			return fmt.Errorf("script: line %d: %w", cmd.Line, err)
		}
	}
	return nil
}

// Run applies cmds in order, stopping at the first error or when ctx is
// done.
func (p *Player) Run(ctx context.Context, cmds []Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		sketch.Logger().Debug("script: command",
			"session", p.engine.ID(), "line", cmd.Line, "op", cmd.Op.String())
		if err := p.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}
