// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import "cogentcore.org/diagram/base/errors"

var (
	// ErrInvalidParameter is returned when a required parameter
	// of a command is missing or invalid.
	ErrInvalidParameter = errors.New("undo: invalid parameter")

	// ErrInvalidOperation is returned when a command is used in a way
	// its state does not allow, such as being done twice, or when the
	// dispatcher is reentered from within a command.
	ErrInvalidOperation = errors.New("undo: invalid operation")
)
