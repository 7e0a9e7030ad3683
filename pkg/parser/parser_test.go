package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/parser"
)

func TestParse_Recurse(t *testing.T) {
	p := parser.New(nil)

	tests := []struct {
		name string
		in   string
		want []any
	}{
		{"Empty", "", nil},
		{"Blank", "   \t ", nil},
		{"Single", "prompt", []any{"prompt"}},
		{"Two Words", "prompt smart", []any{"prompt", "smart"}},
		{"Extra Whitespace", "  prompt \t smart  \n menu ", []any{"prompt", "smart", "menu"}},
		{"Double Quoted", `"prompt smart"`, []any{"prompt smart"}},
		{"Single Quoted", `'prompt smart'`, []any{"prompt smart"}},
		{"Backtick Quoted", "`prompt smart`", []any{"prompt smart"}},
		{"Empty Quotes", `"" x`, []any{"", "x"}},
		{"Quotes Mid Line", `a "b c" d`, []any{"a", "b c", "d"}},
		{"Other Quote Inside", `"it's here" x`, []any{"it's here", "x"}},
		{"Quote Inside Token", `ab"c d`, []any{`ab"c`, "d"}},
		{"Quote Glued To Next", `"a"b`, []any{"a", "b"}},
		{"Whitespace Preserved", `'  a  b  '`, []any{"  a  b  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.in, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_SingleStep(t *testing.T) {
	p := parser.New(nil)

	got, err := p.Parse("prompt smart menu ", false)
	require.NoError(t, err)
	assert.Equal(t, []any{"prompt", "smart menu "}, got)

	got, err = p.Parse("prompt   ", false)
	require.NoError(t, err)
	assert.Equal(t, []any{"prompt"}, got)

	got, err = p.Parse(`"a b"   c`, false)
	require.NoError(t, err)
	assert.Equal(t, []any{"a b", "c"}, got)
}

func TestParse_HeadPlusRest(t *testing.T) {
	p := parser.New(cast.NewChain(cast.Keyword{}, cast.Numeric{}))
	lines := []string{
		"a b c",
		`1 "two words" --k=3 4.5`,
		"  x\ty  z ",
		"`q` r",
	}
	for _, line := range lines {
		full, err := p.Parse(line, true)
		require.NoError(t, err)

		split, err := p.Parse(line, false)
		require.NoError(t, err)
		require.NotEmpty(t, split)

		var rest []any
		if len(split) == 2 {
			rest, err = p.Parse(split[1].(string), true)
			require.NoError(t, err)
		}
		assert.Equal(t, full, append([]any{split[0]}, rest...), "line %q", line)
	}
}

func TestParse_UnterminatedQuote(t *testing.T) {
	p := parser.New(nil)
	for _, in := range []string{`"abc`, `x 'abc`, "`", `a "b' c`} {
		_, err := p.Parse(in, true)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.ErrorIs(t, err, domain.ErrUnterminatedQuote)
	}
}

func TestParse_Casting(t *testing.T) {
	p := parser.New(cast.NewChain(cast.Keyword{}, cast.Numeric{}))

	got, err := p.Parse("--key=2", true)
	require.NoError(t, err)
	assert.Equal(t, []any{domain.Keyword{Key: "key", Value: 2}}, got)

	got, err = p.Parse(`add 1 2.5 "3" --name=bob`, true)
	require.NoError(t, err)
	assert.Equal(t, []any{"add", 1, 2.5, 3, domain.Keyword{Key: "name", Value: "bob"}}, got)

	got, err = p.Parse(`"4 " ' 2.5' 0x1p4`, true)
	require.NoError(t, err)
	assert.Equal(t, []any{4, 2.5, "0x1p4"}, got)

	t.Run("Quoted Keyword Value Keeps Spaces", func(t *testing.T) {
		got, err := p.Parse(`"--msg=hello world"`, true)
		require.NoError(t, err)
		assert.Equal(t, []any{domain.Keyword{Key: "msg", Value: "hello world"}}, got)
	})

	t.Run("Single Step Casts Head Only", func(t *testing.T) {
		got, err := p.Parse("7 8 9", false)
		require.NoError(t, err)
		assert.Equal(t, []any{7, "8 9"}, got)
	})

	t.Run("Cast Error", func(t *testing.T) {
		_, err := p.Parse("ok --if=1", true)
		assert.ErrorIs(t, err, domain.ErrReservedKeyword)
	})
}

func TestParse_IdentityKeepsRawStrings(t *testing.T) {
	p := parser.New(cast.Identity())
	got, err := p.Parse("1 2.0 --k=v", true)
	require.NoError(t, err)
	assert.Equal(t, []any{"1", "2.0", "--k=v"}, got)
}

func TestSplit(t *testing.T) {
	p := parser.New(nil)

	head, rest, ok, err := p.Split("  leaf x y")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "leaf", head)
	assert.Equal(t, "x y", rest)

	_, _, ok, err = p.Split("   ")
	require.NoError(t, err)
	assert.False(t, ok)
}
