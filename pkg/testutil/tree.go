package testutil

import (
	"sort"
	"strings"
	"testing"
)

// FileTree maps slash separated paths to file contents. A path ending with
// a slash is an empty directory.
type FileTree map[string]string

// Write creates tree below root, in path order
func (tree FileTree) Write(t *testing.T, root string) {
	t.Helper()

	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.HasSuffix(name, "/") {
			CreateDir(t, root, name)
			continue
		}
		CreateFile(t, root, name, tree[name])
	}
}

// TempTree writes tree into a new temporary directory and returns it
func TempTree(t *testing.T, tree FileTree) string {
	t.Helper()

	root := t.TempDir()
	tree.Write(t, root)
	return root
}
