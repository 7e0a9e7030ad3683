package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/registry"
)

// Builtins returns the registry of operations menu files can reference.
func Builtins() *registry.Registry {
	reg := registry.NewRegistry()

	reg.MustRegister("echo", func(args []any, _ map[string]any) (any, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprint(a)
		}
		return strings.Join(parts, " "), nil
	}, domain.VarArgs("words"))

	reg.MustRegister("sum", func(args []any, _ map[string]any) (any, error) {
		var total float64
		integral := true
		for _, a := range args {
			switch n := a.(type) {
			case int:
				total += float64(n)
			case float64:
				total += n
				integral = false
			default:
				return nil, fmt.Errorf("sum: not a number: %v", a)
			}
		}
		if integral {
			return int(total), nil
		}
		return total, nil
	}, domain.VarArgs("values"))

	reg.MustRegister("greet", func(args []any, kwargs map[string]any) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("greet: missing name")
		}
		greeting, ok := kwargs["greeting"]
		if !ok {
			greeting = "Hello"
		}
		return fmt.Sprintf("%v, %v!", greeting, args[0]), nil
	}, domain.Arg("name"), domain.KwOnly("greeting", false))

	return reg
}
