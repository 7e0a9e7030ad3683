package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/promptmenu/pkg/binder"
	"github.com/aretw0/promptmenu/pkg/domain"
)

func kw(key string, value any) domain.Keyword {
	return domain.Keyword{Key: key, Value: value}
}

func op(params ...domain.Parameter) *domain.Operation {
	return domain.NewOperation("f", func([]any, map[string]any) (any, error) { return nil, nil }, params...)
}

func TestSplit(t *testing.T) {
	t.Run("Positional Only", func(t *testing.T) {
		args, kwargs, err := binder.Split([]any{"a", 1})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", 1}, args)
		assert.Empty(t, kwargs)
	})

	t.Run("Trailing Keywords", func(t *testing.T) {
		args, kwargs, err := binder.Split([]any{"a", kw("x", 1), kw("y", 2)})
		require.NoError(t, err)
		assert.Equal(t, []any{"a"}, args)
		assert.Equal(t, []domain.Keyword{kw("x", 1), kw("y", 2)}, kwargs)
	})

	t.Run("Positional After Keyword", func(t *testing.T) {
		_, _, err := binder.Split([]any{kw("x", 1), "a"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.ErrorIs(t, err, domain.ErrPositionalAfterKeyword)
		assert.Contains(t, err.Error(), "x=1")
	})
}

func TestKeywordMap_LastWins(t *testing.T) {
	m := binder.KeywordMap([]domain.Keyword{kw("a", 1), kw("b", 2), kw("a", 3)})
	assert.Equal(t, map[string]any{"a": 3, "b": 2}, m)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		params  []domain.Parameter
		values  []any
		wantErr error
		wantMsg string
	}{
		{
			name:   "No Params No Args",
			params: nil,
			values: nil,
		},
		{
			name:   "Positional Fill",
			params: []domain.Parameter{domain.Arg("a"), domain.Arg("b")},
			values: []any{1, 2},
		},
		{
			name:   "Keyword Fills Positional Or Keyword",
			params: []domain.Parameter{domain.Arg("a"), domain.Arg("b")},
			values: []any{1, kw("b", 2)},
		},
		{
			name:   "Optional Left Unbound",
			params: []domain.Parameter{domain.Arg("a"), domain.OptionalArg("b")},
			values: []any{1},
		},
		{
			name:   "Var Positional Absorbs Extra",
			params: []domain.Parameter{domain.Arg("a"), domain.VarArgs("rest")},
			values: []any{1, 2, 3},
		},
		{
			name:   "Var Keyword Absorbs Unknown",
			params: []domain.Parameter{domain.VarKwargs("opts")},
			values: []any{kw("x", 1), kw("y", 2)},
		},
		{
			name:   "Keyword Only Supplied",
			params: []domain.Parameter{domain.Arg("a"), domain.KwOnly("e", true)},
			values: []any{1, kw("e", 2)},
		},
		{
			name:    "Positional Only As Keyword",
			params:  []domain.Parameter{domain.PosOnly("a")},
			values:  []any{kw("a", 1)},
			wantErr: domain.ErrPositionalOnlyAsKeyword,
			wantMsg: "f() got some positional-only arguments passed as keyword arguments: 'a'",
		},
		{
			name:    "Keyword Repeated",
			params:  []domain.Parameter{domain.Arg("a")},
			values:  []any{kw("a", 1), kw("a", 2)},
			wantErr: domain.ErrKeywordRepeated,
			wantMsg: "keyword argument repeated: a",
		},
		{
			name:    "Extra Keyword Repeated",
			params:  []domain.Parameter{domain.VarKwargs("opts")},
			values:  []any{kw("x", 1), kw("x", 2)},
			wantErr: domain.ErrKeywordRepeated,
		},
		{
			name:    "Unexpected Keyword",
			params:  []domain.Parameter{domain.Arg("a")},
			values:  []any{1, kw("z", 2)},
			wantErr: domain.ErrUnexpectedKeyword,
			wantMsg: "f() got an unexpected keyword argument 'z'",
		},
		{
			name:    "Multiple Values",
			params:  []domain.Parameter{domain.Arg("a"), domain.Arg("b")},
			values:  []any{1, kw("a", 2)},
			wantErr: domain.ErrMultipleValues,
			wantMsg: "f() got multiple values for argument 'a'",
		},
		{
			name:    "Too Many Positional",
			params:  []domain.Parameter{domain.Arg("a")},
			values:  []any{1, 2},
			wantErr: domain.ErrTooManyPositional,
			wantMsg: "f() takes 1 positional arguments but 2 were given",
		},
		{
			name:    "Positional Stops At Keyword Only",
			params:  []domain.Parameter{domain.Arg("a"), domain.KwOnly("e", false)},
			values:  []any{1, 2},
			wantErr: domain.ErrTooManyPositional,
		},
		{
			name:    "Missing Positional",
			params:  []domain.Parameter{domain.Arg("a"), domain.Arg("b"), domain.OptionalArg("c")},
			values:  nil,
			wantErr: domain.ErrMissingPositional,
			wantMsg: "missing positional arguments: [a b]",
		},
		{
			name:    "Missing Keyword Only",
			params:  []domain.Parameter{domain.KwOnly("e", true)},
			values:  nil,
			wantErr: domain.ErrMissingKeywordOnly,
			wantMsg: "missing keyword-only arguments: [e]",
		},
		{
			name:    "Missing Positional Reported First",
			params:  []domain.Parameter{domain.Arg("a"), domain.KwOnly("e", true)},
			values:  nil,
			wantErr: domain.ErrMissingPositional,
		},
		{
			name:    "Keyword Checked Before Positional",
			params:  []domain.Parameter{domain.Arg("a")},
			values:  []any{1, 2, kw("z", 3)},
			wantErr: domain.ErrUnexpectedKeyword,
		},
		{
			name:    "Positional After Keyword",
			params:  []domain.Parameter{domain.VarArgs("args"), domain.VarKwargs("kw")},
			values:  []any{kw("z", 3), 1},
			wantErr: domain.ErrPositionalAfterKeyword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binder.Check(op(tt.params...), tt.values)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
