/*
Package dsl provides a fluent Go API for declaring promptmenu command trees.

It is an alternative to writing nested menu.Config literals or loading a YAML file, and is
handy for tests and for menus generated at startup.

Example usage:

	b := dsl.New()

	b.Add("show").
		Sub("user").
		Do("show_user", showUser, domain.Arg("name")).
		Labels("alice", "bob")

	b.Add("quit").Do("quit", func() (any, error) { return nil, nil })

	root, err := b.Menu(cast.NewChain(cast.Keyword{}, cast.Numeric{}), true)
*/
package dsl
