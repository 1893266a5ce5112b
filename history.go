// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

// History holds the undo and redo stacks of canvas snapshots.
//
// Every entry is an immutable full copy owned by the stack holding it.
// A zero limit keeps both stacks unbounded; a positive limit evicts the
// oldest undo entries once exceeded.
//
// History is NOT safe for concurrent use.
type History struct {
	undo  []*Snapshot
	redo  []*Snapshot
	limit int
}

// NewHistory creates an empty history. limit <= 0 means unbounded.
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 0)}
}

// RecordBeforeEdit pushes a snapshot of c onto the undo stack and clears
// the redo stack: a new edit invalidates any undone future.
func (h *History) RecordBeforeEdit(c *Canvas) {
	h.pushUndo(c.Snapshot())
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo restores c to the most recent undo entry, saving the current state
// for Redo. It reports false and changes nothing when there is nothing to
// undo.
func (h *History) Undo(c *Canvas) bool {
	if !h.fits(h.undo, c) {
		return false
	}
	top := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = nil
	h.undo = h.undo[:len(h.undo)-1]

	h.redo = append(h.redo, c.Snapshot())
	_ = c.Restore(top)
	return true
}

// Redo re-applies the most recently undone state. It reports false and
// changes nothing when the redo stack is empty.
func (h *History) Redo(c *Canvas) bool {
	if !h.fits(h.redo, c) {
		return false
	}
	top := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]

	h.pushUndo(c.Snapshot())
	_ = c.Restore(top)
	return true
}

// fits reports whether the top of stack can be restored into c.
func (h *History) fits(stack []*Snapshot, c *Canvas) bool {
	if len(stack) == 0 {
		return false
	}
	top := stack[len(stack)-1]
	if top.width != c.width || top.height != c.height {
		Logger().Warn("sketch: history entry does not match canvas",
			"entry", top.Bounds(), "canvas", c.Bounds())
		return false
	}
	return true
}

func (h *History) pushUndo(s *Snapshot) {
	if h.limit > 0 && len(h.undo) >= h.limit {
		n := len(h.undo) - h.limit + 1
		clear(h.undo[:n])
		h.undo = append(h.undo[:0], h.undo[n:]...)
	}
	h.undo = append(h.undo, s)
}

// CanUndo returns true if there are states to undo.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if there are states to redo.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of undo entries.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of redo entries.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// Limit returns the undo depth limit, 0 when unbounded.
func (h *History) Limit() int {
	return h.limit
}

// Reset drops every entry from both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}
