package groovylex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestLeaf(t *testing.T) {
	leaf := Leaf{Terminal: TermIdent, Value: "x"}
	got := Digest(leaf, DefaultDigestConfig())
	assert.Equal(t, DigestLeaf{Leaf: TermIdent, Value: "x"}, got)
}

func TestDigestPrunesListedRuleNames(t *testing.T) {
	tree := Rule{Name: "sep", Children: []Tree{Leaf{Terminal: TermNL, Value: "\n"}}}
	got := Digest(tree, DefaultDigestConfig())
	assert.Equal(t, map[string]interface{}{}, got)
}

func TestDigestPrunesChildRuleNodes(t *testing.T) {
	tree := Rule{
		Name: "script_statement",
		Children: []Tree{
			Rule{Name: "sep", Children: []Tree{Leaf{Terminal: TermNL, Value: "\n"}}},
			Leaf{Terminal: TermIdent, Value: "x"},
		},
	}
	got := Digest(tree, DefaultDigestConfig())
	assert.Equal(t, DigestRule{
		Rule:     []string{"script_statement"},
		Children: []interface{}{DigestLeaf{Leaf: TermIdent, Value: "x"}},
	}, got)
}

func TestDigestFlattensSingleRuleChild(t *testing.T) {
	tree := Rule{
		Name: "expr",
		Children: []Tree{
			Rule{
				Name:     "atom",
				Children: []Tree{Leaf{Terminal: TermIdent, Value: "x"}},
			},
		},
	}
	got := Digest(tree, DefaultDigestConfig())
	assert.Equal(t, DigestRule{
		Rule:     []string{"expr", "atom"},
		Children: []interface{}{DigestLeaf{Leaf: TermIdent, Value: "x"}},
	}, got)
}

func TestDigestDoesNotFlattenNoFlattenNames(t *testing.T) {
	tree := Rule{
		Name: "outer",
		Children: []Tree{
			Rule{
				Name:     "script_statement",
				Children: []Tree{Leaf{Terminal: TermIdent, Value: "x"}},
			},
		},
	}
	got := Digest(tree, DefaultDigestConfig())
	assert.Equal(t, DigestRule{
		Rule: []string{"outer"},
		Children: []interface{}{
			DigestRule{
				Rule:     []string{"script_statement"},
				Children: []interface{}{DigestLeaf{Leaf: TermIdent, Value: "x"}},
			},
		},
	}, got)
}

func TestDigestEmptyRuleNode(t *testing.T) {
	tree := Rule{Name: "ignorable_sentence"}
	got := Digest(tree, DefaultDigestConfig())
	assert.Equal(t, map[string]interface{}{}, got)
}
