/*
Package cast provides the value transforms applied to every token produced by the parser.

A Chain runs its Casters in order, each one consuming the previous output. An empty or nil
chain is the identity: tokens stay raw strings.

Casters are opt-in about keyword arguments: Numeric recasts the value of a domain.Keyword,
while a caster that does not know about keywords leaves the value untouched.

	chain := cast.NewChain(cast.Keyword{}, cast.Numeric{})
	v, err := chain.Apply("--retries=3") // domain.Keyword{Key: "retries", Value: 3}
*/
package cast
