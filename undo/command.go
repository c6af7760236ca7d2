// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"fmt"
)

// Command is an atomic, optionally reversible change to a target of type T.
//
// Do returns false for an expected failure, such as a missing capability
// on a target, and a non-nil error only for invalid usage, which wraps
// [ErrInvalidParameter] or [ErrInvalidOperation]. A failed Do may leave
// partial changes behind; the dispatcher does not roll them back.
type Command[T any] interface {

	// Do performs the command on the target. It is also used to redo
	// the command after it has been undone.
	Do(target T) (bool, error)

	// Undo reverses the last Do.
	Undo() (bool, error)

	// CanUndo returns whether the command can be undone,
	// and thus whether it is kept in the history.
	CanUndo() bool

	// Description returns a short description for history lists.
	Description() string
}

// States are the states in the life of a [Command].
type States int32

const (
	// Unexecuted is a new command that has not been done.
	Unexecuted States = iota

	// Executed is a command that has been done or redone.
	Executed

	// Reversed is a command that has been undone.
	Reversed

	// Discarded is a command that has been removed from the history,
	// because it fell off the end, the history was cleared, or its
	// Do or Undo failed during redo or undo.
	Discarded
)

var stateNames = []string{"unexecuted", "executed", "reversed", "discarded"}

func (s States) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("States(%d)", int32(s))
	}
	return stateNames[s]
}

// Stateful is implemented by commands that track their [States],
// typically by embedding [Base]. The dispatcher uses it to mark
// discarded commands.
type Stateful interface {
	State() States
	SetState(s States)
}

// Base is embedded in commands to track their state and to catch
// invalid usage, such as doing a command twice or undoing a command
// that has not been done. Commands call BeginDo and EndDo around the
// work of Do, and BeginUndo and EndUndo around the work of Undo.
type Base struct {
	state States
}

func (b *Base) State() States     { return b.state }
func (b *Base) SetState(s States) { b.state = s }

// BeginDo returns an error wrapping [ErrInvalidOperation] if the
// command is not in a state where it can be done.
func (b *Base) BeginDo() error {
	if b.state != Unexecuted && b.state != Reversed {
		return fmt.Errorf("%w: do in state %v", ErrInvalidOperation, b.state)
	}
	return nil
}

// EndDo records the result of Do, and returns it.
func (b *Base) EndDo(ok bool) bool {
	if ok {
		b.state = Executed
	}
	return ok
}

// BeginUndo returns an error wrapping [ErrInvalidOperation] if the
// command is not in a state where it can be undone.
func (b *Base) BeginUndo() error {
	if b.state != Executed {
		return fmt.Errorf("%w: undo in state %v", ErrInvalidOperation, b.state)
	}
	return nil
}

// EndUndo records the result of Undo, and returns it.
func (b *Base) EndUndo(ok bool) bool {
	if ok {
		b.state = Reversed
	}
	return ok
}

// Irreversible is embedded in commands that can not be undone.
// Its Undo always fails with [ErrInvalidOperation].
type Irreversible struct {
	Base
}

func (ir *Irreversible) CanUndo() bool { return false }

func (ir *Irreversible) Undo() (bool, error) {
	return false, fmt.Errorf("%w: command can not be undone", ErrInvalidOperation)
}

// Func is a [Command] made from functions, for small changes that do
// not merit their own type. A nil UndoFunc makes it irreversible.
type Func[T any] struct {
	Base

	// Name is the description of the command.
	Name string

	// DoFunc does the command.
	DoFunc func(target T) bool

	// UndoFunc undoes the command.
	UndoFunc func() bool
}

func (f *Func[T]) Description() string { return f.Name }
func (f *Func[T]) CanUndo() bool       { return f.UndoFunc != nil }

func (f *Func[T]) Do(target T) (bool, error) {
	if f.DoFunc == nil {
		return false, fmt.Errorf("%w: %q has no DoFunc", ErrInvalidParameter, f.Name)
	}
	if err := f.BeginDo(); err != nil {
		return false, err
	}
	return f.EndDo(f.DoFunc(target)), nil
}

func (f *Func[T]) Undo() (bool, error) {
	if f.UndoFunc == nil {
		return false, fmt.Errorf("%w: %q can not be undone", ErrInvalidOperation, f.Name)
	}
	if err := f.BeginUndo(); err != nil {
		return false, err
	}
	return f.EndUndo(f.UndoFunc()), nil
}

// Macro is a [Command] that does a sequence of commands in order on
// the same target, stopping at the first failure. Undo also goes
// through the commands in their original order, oldest first,
// stopping at the first failure.
type Macro[T any] struct {
	Base

	// Name is the description of the macro.
	Name string

	// Commands are the commands in the order they are done.
	Commands []Command[T]
}

// NewMacro returns a new [Macro] with the given description and commands.
func NewMacro[T any](name string, cmds ...Command[T]) *Macro[T] {
	return &Macro[T]{Name: name, Commands: cmds}
}

func (m *Macro[T]) Description() string { return m.Name }

// CanUndo returns whether every command in the macro can be undone.
func (m *Macro[T]) CanUndo() bool {
	for _, c := range m.Commands {
		if !c.CanUndo() {
			return false
		}
	}
	return true
}

func (m *Macro[T]) Do(target T) (bool, error) {
	if err := m.BeginDo(); err != nil {
		return false, err
	}
	for i, c := range m.Commands {
		if c == nil {
			return false, fmt.Errorf("%w: nil command %d in macro %q", ErrInvalidParameter, i, m.Name)
		}
		ok, err := c.Do(target)
		if err != nil || !ok {
			return false, err
		}
	}
	return m.EndDo(true), nil
}

func (m *Macro[T]) Undo() (bool, error) {
	if err := m.BeginUndo(); err != nil {
		return false, err
	}
	for _, c := range m.Commands {
		ok, err := c.Undo()
		if err != nil || !ok {
			return false, err
		}
	}
	return m.EndUndo(true), nil
}
