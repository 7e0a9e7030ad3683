package cast

import (
	"go/token"
	"regexp"

	"github.com/aretw0/promptmenu/pkg/domain"
)

var keywordRe = regexp.MustCompile(`^--([\p{L}\p{N}_]+)=(.*)`)

// Keyword turns "--key=value" into a domain.Keyword. The value is left as the raw remainder.
// Tokens that do not match the pattern, or are not strings, pass through unchanged.
type Keyword struct{}

func (Keyword) Cast(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	m := keywordRe.FindStringSubmatch(s)
	if m == nil {
		return v, nil
	}
	key, value := m[1], m[2]

	if token.IsKeyword(key) {
		return nil, domain.NewArgumentError(domain.ErrReservedKeyword,
			"keyword argument cannot be a reserved word: %s", key)
	}
	if !token.IsIdentifier(key) {
		return nil, domain.NewArgumentError(domain.ErrInvalidKeyword,
			"keyword argument is not a valid identifier: %s", key)
	}
	return domain.Keyword{Key: key, Value: value}, nil
}
