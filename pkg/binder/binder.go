// Package binder checks parsed arguments against an operation's declared parameter contract,
// following positional/keyword call-binding rules, without invoking the operation.
package binder

import "github.com/aretw0/promptmenu/pkg/domain"

// Split separates leading positional values from trailing keyword arguments.
// The boundary is the first domain.Keyword; a plain value after it is an error.
func Split(values []any) ([]any, []domain.Keyword, error) {
	args := make([]any, 0, len(values))
	var kwargs []domain.Keyword
	for _, v := range values {
		kw, ok := v.(domain.Keyword)
		if ok {
			kwargs = append(kwargs, kw)
			continue
		}
		if len(kwargs) > 0 {
			return nil, nil, domain.NewArgumentError(domain.ErrPositionalAfterKeyword,
				"positional argument follows keyword argument: %s", kwargs[0])
		}
		args = append(args, v)
	}
	return args, kwargs, nil
}

// KeywordMap builds the mapping passed to a handler. Later keys overwrite earlier ones.
func KeywordMap(kwargs []domain.Keyword) map[string]any {
	m := make(map[string]any, len(kwargs))
	for _, kw := range kwargs {
		m[kw.Key] = kw.Value
	}
	return m
}

// Check reports the first binding violation of values against op's contract.
// Keyword arguments are checked before positional values.
func Check(op *domain.Operation, values []any) error {
	args, kwargs, err := Split(values)
	if err != nil {
		return err
	}

	name := op.DisplayName()
	bound := make(map[string]bool, len(op.Params))
	index := make(map[string]domain.Parameter, len(op.Params))
	var varPositional, varKeyword bool
	for _, p := range op.Params {
		switch p.Kind {
		case domain.VarPositional:
			varPositional = true
		case domain.VarKeyword:
			varKeyword = true
		default:
			index[p.Name] = p
		}
	}

	extra := make(map[string]bool)
	for _, kw := range kwargs {
		p, declared := index[kw.Key]
		switch {
		case declared && bound[kw.Key]:
			return domain.NewArgumentError(domain.ErrKeywordRepeated,
				"keyword argument repeated: %s", kw.Key)
		case declared && p.Kind == domain.PositionalOnly:
			return domain.NewArgumentError(domain.ErrPositionalOnlyAsKeyword,
				"%s() got some positional-only arguments passed as keyword arguments: '%s'", name, kw.Key)
		case declared:
			bound[kw.Key] = true
		case varKeyword && extra[kw.Key]:
			return domain.NewArgumentError(domain.ErrKeywordRepeated,
				"%s() got multiple values for keyword argument '%s'", name, kw.Key)
		case varKeyword:
			extra[kw.Key] = true
		default:
			return domain.NewArgumentError(domain.ErrUnexpectedKeyword,
				"%s() got an unexpected keyword argument '%s'", name, kw.Key)
		}
	}

	remaining := len(args)
	positional := 0
	for _, p := range op.Params {
		if !p.Kind.Positional() {
			break
		}
		positional++
		if remaining == 0 {
			continue
		}
		if bound[p.Name] {
			return domain.NewArgumentError(domain.ErrMultipleValues,
				"%s() got multiple values for argument '%s'", name, p.Name)
		}
		bound[p.Name] = true
		remaining--
	}

	if remaining > 0 && !varPositional {
		return domain.NewArgumentError(domain.ErrTooManyPositional,
			"%s() takes %d positional arguments but %d were given", name, positional, len(args))
	}

	var missingPositional, missingKeywordOnly []string
	for _, p := range op.Params {
		if !p.Required || p.Kind.Variadic() || bound[p.Name] {
			continue
		}
		if p.Kind.Positional() {
			missingPositional = append(missingPositional, p.Name)
		} else {
			missingKeywordOnly = append(missingKeywordOnly, p.Name)
		}
	}

	if len(missingPositional) > 0 {
		return domain.NewArgumentError(domain.ErrMissingPositional,
			"%s() missing positional arguments: %v", name, missingPositional)
	}
	if len(missingKeywordOnly) > 0 {
		return domain.NewArgumentError(domain.ErrMissingKeywordOnly,
			"%s() missing keyword-only arguments: %v", name, missingKeywordOnly)
	}
	return nil
}
