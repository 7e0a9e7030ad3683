/*
Package domain contains the core types shared by the tokenizer, the menu tree and the
argument binder.

It is kept free of parsing or dispatch logic so that every other package can depend on
it without cycles.

# Key Entities

  - Keyword: A key/value pair recognized from "--key=value" syntax.
  - Parameter: One entry of an operation's declared parameter contract.
  - Operation: A named handler plus the contract its arguments are checked against.
  - ConfigError / ArgumentError: The build-time and run-time error kinds.
*/
package domain
