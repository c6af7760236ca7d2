// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides commands that change a target and can be undone,
// and a [Dispatcher] that executes them while keeping bounded undo and
// redo histories.
package undo

import (
	"fmt"
	"log/slog"
)

// DefaultMaxHistory is the default bound on each history stack.
var DefaultMaxHistory = 100

// Dispatcher executes commands on a target and manages the undo and redo
// histories. Both histories are stacks bounded by MaxHistory, with the
// oldest entries discarded first.
//
// It is not safe for concurrent use, and a command must not call back
// into the dispatcher from its Do or Undo.
type Dispatcher[T any] struct {
	target     T
	maxHistory int
	undos      []Command[T]
	redos      []Command[T]
	running    bool
	onChange   []func()
}

// New returns a new [Dispatcher] for the given target,
// with [DefaultMaxHistory].
func New[T any](target T) *Dispatcher[T] {
	return &Dispatcher[T]{target: target, maxHistory: DefaultMaxHistory}
}

// Target returns the target that commands are done on.
func (d *Dispatcher[T]) Target() T { return d.target }

func (d *Dispatcher[T]) MaxHistory() int { return d.maxHistory }
func (d *Dispatcher[T]) UndoLen() int    { return len(d.undos) }
func (d *Dispatcher[T]) RedoLen() int    { return len(d.redos) }
func (d *Dispatcher[T]) CanUndo() bool   { return len(d.undos) > 0 }
func (d *Dispatcher[T]) CanRedo() bool   { return len(d.redos) > 0 }

// SetMaxHistory sets the bound on each history stack, discarding the
// oldest entries that no longer fit. A negative value is taken as 0.
func (d *Dispatcher[T]) SetMaxHistory(n int) {
	d.maxHistory = max(n, 0)
	d.undos = d.trim(d.undos)
	d.redos = d.trim(d.redos)
	d.changed()
}

// OnChange adds a function called after the histories change.
func (d *Dispatcher[T]) OnChange(fun func()) {
	d.onChange = append(d.onChange, fun)
}

// Execute does the command on the target. If it succeeds, the redo
// history is cleared, and a command that can be undone is pushed onto
// the undo history. A failed command is not recorded, and any partial
// changes it made are left in place. The error is non-nil only for
// invalid usage.
func (d *Dispatcher[T]) Execute(cmd Command[T]) (bool, error) {
	if cmd == nil {
		return false, fmt.Errorf("%w: nil command", ErrInvalidParameter)
	}
	if err := d.begin("Execute", cmd); err != nil {
		return false, err
	}
	defer d.end()
	ok, err := cmd.Do(d.target)
	if err != nil || !ok {
		slog.Debug("undo.Dispatcher.Execute: command failed", "command", cmd.Description(), "err", err)
		return false, err
	}
	d.discardAll(d.redos)
	d.redos = d.redos[:0]
	if cmd.CanUndo() {
		d.undos = d.trim(append(d.undos, cmd))
	}
	d.changed()
	return true, nil
}

// UndoCommand undoes the most recent command in the undo history and
// moves it to the redo history. If the undo fails, the command is
// discarded and false is returned. It returns false if there is
// nothing to undo.
func (d *Dispatcher[T]) UndoCommand() (bool, error) {
	if len(d.undos) == 0 {
		return false, nil
	}
	cmd := d.undos[len(d.undos)-1]
	if err := d.begin("UndoCommand", cmd); err != nil {
		return false, err
	}
	defer d.end()
	d.undos = d.undos[:len(d.undos)-1]
	ok, err := cmd.Undo()
	if err != nil || !ok {
		slog.Warn("undo.Dispatcher.UndoCommand: undo failed, discarding command", "command", cmd.Description(), "err", err)
		discard(cmd)
		d.changed()
		return false, err
	}
	d.redos = d.trim(append(d.redos, cmd))
	d.changed()
	return true, nil
}

// RedoCommand does again the most recently undone command and moves it
// back to the undo history. If the redo fails, the command is discarded
// and false is returned. It returns false if there is nothing to redo.
func (d *Dispatcher[T]) RedoCommand() (bool, error) {
	if len(d.redos) == 0 {
		return false, nil
	}
	cmd := d.redos[len(d.redos)-1]
	if err := d.begin("RedoCommand", cmd); err != nil {
		return false, err
	}
	defer d.end()
	d.redos = d.redos[:len(d.redos)-1]
	ok, err := cmd.Do(d.target)
	if err != nil || !ok {
		slog.Warn("undo.Dispatcher.RedoCommand: redo failed, discarding command", "command", cmd.Description(), "err", err)
		discard(cmd)
		d.changed()
		return false, err
	}
	d.undos = d.trim(append(d.undos, cmd))
	d.changed()
	return true, nil
}

// PeekUndo returns the command that the given number of undos back
// would undo, with 0 being the next one, or nil if there is none.
func (d *Dispatcher[T]) PeekUndo(offset int) Command[T] {
	return peek(d.undos, offset)
}

// PeekRedo returns the command that the given number of redos forward
// would redo, with 0 being the next one, or nil if there is none.
func (d *Dispatcher[T]) PeekRedo(offset int) Command[T] {
	return peek(d.redos, offset)
}

// ClearHistory empties both histories without undoing or redoing anything.
func (d *Dispatcher[T]) ClearHistory() {
	d.discardAll(d.undos)
	d.discardAll(d.redos)
	d.undos = nil
	d.redos = nil
	d.changed()
}

func (d *Dispatcher[T]) begin(op string, cmd Command[T]) error {
	if d.running {
		return fmt.Errorf("%w: %s of %q while another command is running", ErrInvalidOperation, op, cmd.Description())
	}
	slog.Debug("undo.Dispatcher."+op, "command", cmd.Description())
	d.running = true
	return nil
}

func (d *Dispatcher[T]) end() { d.running = false }

func (d *Dispatcher[T]) changed() {
	for _, fun := range d.onChange {
		fun()
	}
}

// trim discards the oldest commands beyond the max history.
func (d *Dispatcher[T]) trim(stack []Command[T]) []Command[T] {
	over := len(stack) - d.maxHistory
	if over <= 0 {
		return stack
	}
	d.discardAll(stack[:over])
	return append(stack[:0], stack[over:]...)
}

func (d *Dispatcher[T]) discardAll(cmds []Command[T]) {
	for _, c := range cmds {
		discard(c)
	}
}

func discard[T any](cmd Command[T]) {
	if s, ok := cmd.(Stateful); ok {
		s.SetState(Discarded)
	}
}

func peek[T any](stack []Command[T], offset int) Command[T] {
	i := len(stack) - 1 - offset
	if offset < 0 || i < 0 {
		return nil
	}
	return stack[i]
}
