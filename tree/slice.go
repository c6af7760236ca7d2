// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// starts the search at a guess of where the node might be and
// works outward from there, which is fast when the guess is close.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return findFunc(slice, func(e Node) bool { return e == child }, startIndex...)
}

// IndexByName returns the index of the first element in the given slice that
// has the given name, or -1 if none is found. See [IndexOf] for info on startIndex.
func IndexByName(slice []Node, name string, startIndex ...int) int {
	return findFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name }, startIndex...)
}

// findFunc searches outward in both directions from the start index.
func findFunc(slice []Node, match func(e Node) bool, startIndex ...int) int {
	sz := len(slice)
	if sz == 0 {
		return -1
	}
	st := sz / 2
	if len(startIndex) > 0 {
		st = min(max(startIndex[0], 0), sz-1)
	}
	if match(slice[st]) {
		return st
	}
	for d := 1; st-d >= 0 || st+d < sz; d++ {
		if up := st + d; up < sz && match(slice[up]) {
			return up
		}
		if dn := st - d; dn >= 0 && match(slice[dn]) {
			return dn
		}
	}
	return -1
}
