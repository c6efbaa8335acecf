// Package testutil provides fixtures shared by zr's package tests.
//
// Key components:
//   - CreateFile / ReadFile: file helpers failing the test on error
//   - FileTree: a declarative directory tree written below a root
//   - Isolate: points every zr directory (config, cache, state) at
//     temporary directories
//
// All test data should be defined inline, not in external files.
package testutil
