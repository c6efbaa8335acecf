// Package variants derives naming-convention variants from argument values.
//
// Given a key and a value, Expand returns the value as supplied plus one
// entry per separator and case suffix, keyed "{key}-{suffix}":
//
//	proj        a-b-c
//	proj-path   a/b/c
//	proj-dot    a.b.c
//	proj-upper  A-B-C
//	proj-camel  aBC
//	proj-snake  a_b_c
//	...
//
// List values are transformed element-wise, keeping order and length.
package variants
