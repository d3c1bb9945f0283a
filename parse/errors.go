// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parse

import (
	"strconv"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEOF
	TrailingTokens
	InvalidCharacter
)

// Error describes a parse failure at a byte offset within the source text.
type Error struct {
	Kind     ErrorKind
	Offset   int
	Found    string
	Expected string
}

func (e *Error) Error() string {
	at := " at offset " + strconv.Itoa(e.Offset)
	switch e.Kind {
	case UnexpectedEOF:
		return "unexpected end of input" + at + ", expected " + e.Expected
	case TrailingTokens:
		return "extra tokens at end of input" + at + ": " + e.Found
	case InvalidCharacter:
		return "invalid character '" + e.Found + "'" + at
	}
	return "unexpected " + e.Found + at + ", expected " + e.Expected
}
