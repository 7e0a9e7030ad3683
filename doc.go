/*
Package promptmenu builds a multi-level command menu for terminal applications from a
declarative configuration.

A raw command line is tokenized (quote-aware), each token is passed through a cast chain,
and the tokens are walked down the menu tree until a leaf operation is reached. Leaves can
optionally check the parsed arguments against a declared parameter contract before the
operation is called, reproducing positional/keyword call-binding rules.

# Concept

Every node of the tree is either a leaf bound to a domain.Operation or an internal node with
named children. The tree is built once and never modified, so a Menu can be shared freely.
The menu also exports a completion structure that a line editor can use for suggestions.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/promptmenu"
		"github.com/aretw0/promptmenu/pkg/cast"
		"github.com/aretw0/promptmenu/pkg/domain"
		"github.com/aretw0/promptmenu/pkg/menu"
	)

	func main() {
		greet := domain.NewOperation("greet", func(args []any, kwargs map[string]any) (any, error) {
			return fmt.Sprintf("%v, %v!", kwargs["greeting"], args[0]), nil
		}, domain.Arg("name"), domain.KwOnly("greeting", true))

		m, err := promptmenu.New([]menu.Config{
			{Command: "say", Children: menu.Nodes{
				{Command: "hello", Operation: greet, Children: menu.Labels{"alice", "bob"}},
			}},
		},
			promptmenu.WithCastChain(cast.NewChain(cast.Keyword{}, cast.Numeric{})),
			promptmenu.WithValidation(true),
		)
		if err != nil {
			log.Fatal(err)
		}

		out, err := m.Run("say hello alice --greeting=Hi")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out) // Hi, alice!
	}

Menus can also be loaded from YAML or JSON files with package loader, where operations are
referenced by name through a registry.Registry.
*/
package promptmenu
