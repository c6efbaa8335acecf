package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCases(t *testing.T) {
	tests := []struct {
		name  string
		fn    Case
		input string
		want  string
	}{
		{"upper", Upper, "helloworld", "HELLOWORLD"},
		{"upper keeps separators", Upper, "a-b-c", "A-B-C"},
		{"lower", Lower, "HELLOWORLD", "helloworld"},
		{"sentence from camel", Sentence, "helloWorld", "hello world"},
		{"sentence from kebab", Sentence, "a-b-c", "a b c"},
		{"title", Title, "hello world", "Hello World"},
		{"camel", Camel, "hello world", "helloWorld"},
		{"camel from kebab", Camel, "a-b-c", "aBC"},
		{"pascal", Pascal, "hello world", "HelloWorld"},
		{"kebab", Kebab, "hello world", "hello-world"},
		{"kebab from camel", Kebab, "helloWorld", "hello-world"},
		{"train", Train, "hello world", "Hello-World"},
		{"snake", Snake, "hello world", "hello_world"},
		{"constant", Constant, "hello world", "HELLO_WORLD"},
		{"kebab collapses separator runs", Kebab, "a  b__c", "a-b-c"},
		{"kebab trims edge separators", Kebab, "-a-", "a"},
		{"snake collapses separator runs", Snake, "a--b", "a_b"},
		{"snake trims edge separators", Snake, "_a_", "a"},
		{"constant collapses separator runs", Constant, " my  app ", "MY_APP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.input))
		})
	}
}

func TestCasesOnEmptyInput(t *testing.T) {
	for _, fn := range []Case{Upper, Lower, Sentence, Title, Camel, Pascal, Kebab, Train, Snake, Constant} {
		assert.Equal(t, "", fn(""))
	}
}

func TestKebabIsIdempotent(t *testing.T) {
	for _, v := range []string{"helloWorld", "Hello World", "my-project", "some_snake_case", "PascalCase"} {
		t.Run(v, func(t *testing.T) {
			once := Kebab(v)
			assert.Equal(t, once, Kebab(once))
		})
	}
}

func TestSeparate(t *testing.T) {
	tests := []struct {
		input string
		sep   byte
		want  string
	}{
		{"a-b_c$d!e'f4g h", '/', "a/b/c/d/e/f4g/h"},
		{"a--b__c---d", '/', "a/b/c/d"},
		{"a-b_c$d!e'f4g h", '.', "a.b.c.d.e.f4g.h"},
		{"a--b__c---d", '.', "a.b.c.d"},
		{"a..b", '.', "a.b"},
		{"", '/', ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Separate(tt.input, tt.sep))
		})
	}
}

func TestExpand(t *testing.T) {
	got := Expand("proj", "a-b-c")

	want := []Variant{
		{"proj", "a-b-c"},
		{"proj-path", "a/b/c"},
		{"proj-dot", "a.b.c"},
		{"proj-upper", "A-B-C"},
		{"proj-lower", "a-b-c"},
		{"proj-sentence", "a b c"},
		{"proj-title", "A B C"},
		{"proj-camel", "aBC"},
		{"proj-pascal", "ABC"},
		{"proj-kebab", "a-b-c"},
		{"proj-train", "A-B-C"},
		{"proj-snake", "a_b_c"},
		{"proj-constant", "A_B_C"},
	}
	assert.Equal(t, want, got)
}

func TestExpandArray(t *testing.T) {
	m := ExpandMap("key", []string{"a-b", "c d"})

	assert.Equal(t, []string{"a-b", "c d"}, m["key"])
	assert.Equal(t, []string{"A-B", "C D"}, m["key-upper"])
	assert.Equal(t, []string{"a/b", "c/d"}, m["key-path"])
	assert.Equal(t, []string{"aB", "cD"}, m["key-camel"])
	assert.Equal(t, []string{"a_b", "c_d"}, m["key-snake"])
}

func TestExpandArrayPreservesOrderAndLength(t *testing.T) {
	input := []string{"kafka", "api", "error"}
	for _, v := range Expand("mod", input) {
		values, ok := v.Value.([]string)
		require.True(t, ok, v.Key)
		assert.Len(t, values, len(input), v.Key)
	}
	assert.Equal(t, []string{"KAFKA", "API", "ERROR"}, ExpandMap("mod", input)["mod-upper"])
}

func TestExpandDoesNotAliasInput(t *testing.T) {
	input := []string{"a"}
	m := ExpandMap("k", input)
	input[0] = "changed"
	assert.Equal(t, []string{"a"}, m["k"])
}

func TestExpandUnconvertible(t *testing.T) {
	m := ExpandMap("k", nil)
	assert.Len(t, m, len(Suffixes())+1)
	for key, v := range m {
		assert.Equal(t, "", v, key)
	}
}

func TestSuffixes(t *testing.T) {
	assert.Equal(t, []string{
		"path", "dot", "upper", "lower", "sentence", "title",
		"camel", "pascal", "kebab", "train", "snake", "constant",
	}, Suffixes())
	assert.Equal(t, "proj-kebab", Key("proj", SuffixKebab))
}
