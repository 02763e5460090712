package language

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// Java returns the tree-sitter language used for source fragments.
func Java() *sitter.Language {
	return sitter.NewLanguage(tree_sitter_java.Language())
}
