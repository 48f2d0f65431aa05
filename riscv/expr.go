package riscv

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpression evaluates a compile-time integer expression.
func evalExpression(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expandExpressions replaces each $(...) in a line with its decimal value.
// Parentheses inside an expression may nest.
func expandExpressions(line string) (out string, err error) {
	var sb strings.Builder

	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			sb.WriteString(line)
			break
		}
		sb.WriteString(line[:start])

		depth := 0
		end := -1
		for n := start + 1; n < len(line); n++ {
			switch line[n] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				end = n
				break
			}
		}
		if end < 0 {
			err = ErrParseExpression(line[start+2:])
			return
		}

		var value int64
		value, err = evalExpression(line[start+2 : end])
		if err != nil {
			return
		}
		fmt.Fprintf(&sb, "%d", value)
		line = line[end+1:]
	}

	out = sb.String()
	return
}
