package encoder

import (
	"strconv"
	"strings"

	"github.com/wippyai/bytify/expr"
)

// describe renders a node for error messages.
func describe(e expr.Expr) string {
	switch node := e.(type) {
	case *expr.Int:
		return node.Text
	case *expr.Float:
		return node.Text
	case *expr.Char:
		return "'" + node.Text + "'"
	case *expr.Str:
		return strconv.Quote(node.Value)
	case *expr.Bool:
		return node.Text
	case *expr.Neg:
		return "-" + describe(node.X)
	case *expr.Order:
		return describe(node.X) + ": " + node.Tag
	case *expr.Ident:
		return node.Name
	case *expr.Call:
		args := make([]string, len(node.Args))
		for i, a := range node.Args {
			args[i] = describe(a)
		}
		return node.Fn + "(" + strings.Join(args, ", ") + ")"
	case nil:
		return "nil"
	}
	return "unknown expression"
}
