package host

import (
	"fmt"
	"strconv"
)

// stringArg returns args[i] as a string. Numbers are formatted back so a
// number= argument can stand in for text.
func stringArg(args []any, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d (%s)", i+1, name)
	}
	switch v := args[i].(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("argument %d (%s) must be text, got %T", i+1, name, args[i])
	}
}

// stringArgs converts every argument with stringArg
func stringArgs(args []any, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		v, err := stringArg(args, i, name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
