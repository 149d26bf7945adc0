package groovylex

// Tree is the generic parse-tree shape Digest and ExtractNextflow walk.
// Neither this package nor SPEC_FULL.md ships a grammar engine (§1: "the
// LALR/Earley grammar engine... only its input contract is specified
// here") — Tree is the contract an external parser's tree must satisfy,
// modeled directly on the Lark tree LarkFilteringTreeEncoder and
// ParseNextflowTreeToDict walk in original_source/.
type Tree interface {
	isTree()
}

// Leaf is a terminal node: one Terminal produced by the adapter, carried
// through to the parse tree by the (unimplemented) grammar engine.
type Leaf struct {
	Terminal string
	Value    string
}

func (Leaf) isTree() {}

// Rule is an internal parse-tree node: a grammar production name plus its
// children in production order.
type Rule struct {
	Name     string
	Children []Tree
}

func (Rule) isTree() {}

// DigestConfig controls the prune and no-flatten rule-name sets.
// Defaults match LarkFilteringTreeEncoder's: prune ["sep", "nls"],
// never flatten away a ["script_statement"] node.
type DigestConfig struct {
	Prune     map[string]bool
	NoFlatten map[string]bool
}

// DefaultDigestConfig reproduces LarkFilteringTreeEncoder's defaults.
func DefaultDigestConfig() DigestConfig {
	return DigestConfig{
		Prune:     nameSet("sep", "nls"),
		NoFlatten: nameSet("script_statement"),
	}
}

func nameSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// DigestLeaf is a digested terminal node.
type DigestLeaf struct {
	Leaf  string `json:"leaf"`
	Value string `json:"value"`
}

// DigestRule is a digested rule node. Rule holds the chain of rule names
// collapsed into this node by flattening (length 1 unless flattening
// fired), outermost first.
type DigestRule struct {
	Rule     []string      `json:"rule"`
	Children []interface{} `json:"children"`
}

// Digest converts a Tree into the compact JSON-friendly value described by
// §6: leaves become {"leaf", "value"}, rule nodes become {"rule",
// "children"} with pruned rule names elided and single-rule-child chains
// flattened (their names prepended into "rule"), and a rule node with no
// surviving children becomes {}.
func Digest(t Tree, cfg DigestConfig) interface{} {
	if r, ok := t.(Rule); ok && cfg.Prune[r.Name] {
		return map[string]interface{}{}
	}
	return digestTree(t, cfg)
}

func digestTree(t Tree, cfg DigestConfig) interface{} {
	switch n := t.(type) {
	case Leaf:
		return DigestLeaf{Leaf: n.Terminal, Value: n.Value}
	case Rule:
		return digestRule(n, cfg, nil)
	default:
		return map[string]interface{}{}
	}
}

// digestRule mirrors LarkFilteringTreeEncoder.default: prefix is the chain
// of ancestor rule names already flattened into this call, growing by one
// name per recursion whether or not flattening ultimately fires — the
// no-flatten check tests the CHILD being considered for absorption, not
// the node doing the absorbing, so a node named e.g. "script_statement"
// never disappears into its parent's rule path even when some other
// ancestor further up does flatten through it.
func digestRule(n Rule, cfg DigestConfig, prefix []string) interface{} {
	path := append(append([]string{}, prefix...), n.Name)

	var children []Tree
	for _, c := range n.Children {
		if r, isRule := c.(Rule); isRule && cfg.Prune[r.Name] {
			continue
		}
		children = append(children, c)
	}

	if len(children) == 0 {
		return map[string]interface{}{}
	}

	if len(children) == 1 {
		if childRule, isRule := children[0].(Rule); isRule && !cfg.NoFlatten[childRule.Name] {
			return digestRule(childRule, cfg, path)
		}
	}

	digested := make([]interface{}, 0, len(children))
	for _, c := range children {
		digested = append(digested, digestTree(c, cfg))
	}
	return DigestRule{Rule: path, Children: digested}
}
