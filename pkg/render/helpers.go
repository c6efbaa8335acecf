package render

import (
	"strings"

	"github.com/aymerick/raymond"

	"github.com/beltram/zr/pkg/variants"
)

// helpers are available in every template: one per case variant, applied
// to any value and element-wise to Lists (`{{kebab lang}}`), `join` for
// multi values (`{{join mod " "}}`) and an `each` aware of Lists.
func helpers() map[string]interface{} {
	h := map[string]interface{}{
		"join": join,
		"each": each,
	}
	cases := map[string]variants.Case{
		variants.SuffixUpper:    variants.Upper,
		variants.SuffixLower:    variants.Lower,
		variants.SuffixSentence: variants.Sentence,
		variants.SuffixTitle:    variants.Title,
		variants.SuffixCamel:    variants.Camel,
		variants.SuffixPascal:   variants.Pascal,
		variants.SuffixKebab:    variants.Kebab,
		variants.SuffixTrain:    variants.Train,
		variants.SuffixSnake:    variants.Snake,
		variants.SuffixConstant: variants.Constant,
	}
	for name, fn := range cases {
		fn := fn
		h[name] = func(value interface{}) interface{} {
			if l, ok := value.(List); ok {
				out := make([]string, len(l.values))
				for i, v := range l.values {
					out[i] = fn(v)
				}
				return List{values: out}
			}
			return fn(raymond.Str(value))
		}
	}
	return h
}

func join(values interface{}, sep string) string {
	switch v := values.(type) {
	case List:
		return strings.Join(v.values, sep)
	case []string:
		return strings.Join(v, sep)
	case []interface{}:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = raymond.Str(p)
		}
		return strings.Join(parts, sep)
	default:
		return raymond.Str(values)
	}
}
