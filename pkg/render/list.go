package render

import (
	"strings"

	"github.com/aymerick/raymond"
)

// ListSeparator joins the elements of a multi value rendered by a bare
// mustache
const ListSeparator = ", "

// List is the context value of a non-empty multi value: `{{mod}}` renders
// it joined with ListSeparator, `{{#each mod}}` iterates its elements.
type List struct {
	values []string
}

// NewList returns the list of values
func NewList(values []string) List {
	return List{values: append([]string(nil), values...)}
}

// Values returns a copy of the elements
func (l List) Values() []string {
	return append([]string(nil), l.values...)
}

// String is what raymond prints for a bare mustache
func (l List) String() string {
	return strings.Join(l.values, ListSeparator)
}

// templateContext returns a copy of ctx where non-empty string arrays are
// Lists. Empty arrays stay as they are so that `{{#if mod}}` is false.
func templateContext(ctx map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		if values, ok := v.([]string); ok && len(values) > 0 {
			out[k] = NewList(values)
			continue
		}
		out[k] = v
	}
	return out
}

// elements returns the items of an iterable context value
func elements(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case List:
		return stringItems(v.values), true
	case []string:
		return stringItems(v), true
	case []interface{}:
		return v, true
	default:
		return nil, false
	}
}

func stringItems(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, s := range values {
		out[i] = s
	}
	return out
}

// each replaces the builtin block helper, which walks the fields of a
// struct rather than the elements of a List. Non iterable values render
// the inverse block.
func each(value interface{}, options *raymond.Options) interface{} {
	items, ok := elements(value)
	if !ok || len(items) == 0 {
		return options.Inverse()
	}

	var b strings.Builder
	for i, item := range items {
		frame := options.NewDataFrame()
		frame.Set("index", i)
		frame.Set("key", i)
		frame.Set("first", i == 0)
		frame.Set("last", i == len(items)-1)
		b.WriteString(options.FnCtxData(item, frame))
	}
	return b.String()
}
