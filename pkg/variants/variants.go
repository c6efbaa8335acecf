package variants

import "fmt"

// Suffixes of the separator variants
const (
	SuffixPath = "path"
	SuffixDot  = "dot"
)

// Suffixes of the case variants
const (
	SuffixUpper    = "upper"
	SuffixLower    = "lower"
	SuffixSentence = "sentence"
	SuffixTitle    = "title"
	SuffixCamel    = "camel"
	SuffixPascal   = "pascal"
	SuffixKebab    = "kebab"
	SuffixTrain    = "train"
	SuffixSnake    = "snake"
	SuffixConstant = "constant"
)

type transform struct {
	suffix string
	fn     Case
}

// transforms lists every derived variant in output order
var transforms = []transform{
	{SuffixPath, func(s string) string { return Separate(s, '/') }},
	{SuffixDot, func(s string) string { return Separate(s, '.') }},
	{SuffixUpper, Upper},
	{SuffixLower, Lower},
	{SuffixSentence, Sentence},
	{SuffixTitle, Title},
	{SuffixCamel, Camel},
	{SuffixPascal, Pascal},
	{SuffixKebab, Kebab},
	{SuffixTrain, Train},
	{SuffixSnake, Snake},
	{SuffixConstant, Constant},
}

// Variant is one rendering-context entry derived from an argument value
type Variant struct {
	Key   string
	Value interface{}
}

// Suffixes returns every variant suffix in output order
func Suffixes() []string {
	out := make([]string, len(transforms))
	for i, t := range transforms {
		out[i] = t.suffix
	}
	return out
}

// Key returns the context key of the given suffix of base
func Key(base, suffix string) string {
	return fmt.Sprintf("%s-%s", base, suffix)
}

// Expand returns the value as supplied under key followed by every separator
// and case variant. value is a string or a []string; anything else, nil
// included, is treated as the empty string.
func Expand(key string, value interface{}) []Variant {
	out := make([]Variant, 0, len(transforms)+1)

	switch v := value.(type) {
	case []string:
		out = append(out, Variant{Key: key, Value: append([]string(nil), v...)})
		for _, t := range transforms {
			out = append(out, Variant{Key: Key(key, t.suffix), Value: apply(v, t.fn)})
		}
	case string:
		out = append(out, Variant{Key: key, Value: v})
		for _, t := range transforms {
			out = append(out, Variant{Key: Key(key, t.suffix), Value: t.fn(v)})
		}
	default:
		out = append(out, Variant{Key: key, Value: ""})
		for _, t := range transforms {
			out = append(out, Variant{Key: Key(key, t.suffix), Value: ""})
		}
	}
	return out
}

// ExpandMap is Expand collected into a map
func ExpandMap(key string, value interface{}) map[string]interface{} {
	vs := Expand(key, value)
	m := make(map[string]interface{}, len(vs))
	for _, v := range vs {
		m[v.Key] = v.Value
	}
	return m
}

func apply(values []string, fn Case) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}
