// Package escript compiles operations into the ExtendScript payload the
// companion panel evaluates inside Premiere Pro.
//
// The source of truth is data, not text: a Call names a function in the
// panel's dispatch table and carries its arguments as a map. Compilation
// JSON-encodes the arguments into the script, so caller-supplied strings
// can never escape into script code regardless of what they contain.
package escript

import (
	"fmt"
	"regexp"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dispatchTable is the global object the panel installs into the
// ExtendScript engine. Both sides must agree on this name.
const dispatchTable = "$._PMCP_"

var fnNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.]*$`)

// Call is one host operation represented as data.
type Call struct {
	Fn   string
	Args map[string]any
}

// NewCall builds a Call; nil args means no arguments.
func NewCall(fn string, args map[string]any) Call {
	if args == nil {
		args = map[string]any{}
	}
	return Call{Fn: fn, Args: args}
}

// Compile renders the call as an ExtendScript expression. The panel
// evaluates it and writes the JSON-stringified result into the response
// artifact.
func (c Call) Compile() (string, error) {
	if !fnNameRe.MatchString(c.Fn) {
		return "", fmt.Errorf("invalid host function name %q", c.Fn)
	}

	args := c.Args
	if args == nil {
		args = map[string]any{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("encoding args for %s: %w", c.Fn, err)
	}

	return fmt.Sprintf("%s.invoke(%s, %s)", dispatchTable, strconv.Quote(c.Fn), encoded), nil
}
