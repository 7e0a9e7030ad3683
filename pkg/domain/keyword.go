package domain

import "fmt"

// Keyword represents a keyword argument parsed from "--key=value" syntax.
type Keyword struct {
	Key   string
	Value any
}

func (k Keyword) String() string {
	return fmt.Sprintf("%s=%v", k.Key, k.Value)
}
