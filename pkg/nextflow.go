package groovylex

// Nextflow feature extraction walks the *digested* tree (the output of
// Digest, §6) collecting process/include/workflow declarations. Unlike
// original_source/translated-groovy3-parser.py's ParseNextflowTreeToDict —
// which switches on a specific custom grammar's rule names
// (process_decl, container_decl, ...) — detection here is grammar-agnostic,
// matching on a rule path's suffix plus its first identifier child, per
// spec.md §6: this repo does not ship the grammar engine that would define
// those rule names, so the only contract it can rely on is the shape §6
// spells out literally.

// statementSuffix is the rule-path tail that marks a Nextflow feature
// statement: a bare keyword-led command (`process name { ... }`, `include
// '...' from '...'`, `container '...'`, ...) however many wrapping rules a
// real grammar inserts around it.
var statementSuffix = []string{"statement", "statement_expression", "command_expression"}

const (
	kwProcess   = "process"
	kwInclude   = "include"
	kwWorkflow  = "workflow"
	kwContainer = "container"
	kwConda     = "conda"
	kwTemplate  = "template"
)

// NfProcess is a Nextflow `process` declaration's extracted arguments.
type NfProcess struct {
	Name       string
	Containers []string
	Condas     []string
	Templates  []string
}

// NfInclude is a Nextflow `include ... from '...'` statement.
type NfInclude struct {
	Path string
}

// NfWorkflow is a Nextflow `workflow` block; Name is empty for the
// anonymous/default workflow form.
type NfWorkflow struct {
	Name string
}

// NextflowFeatures is the aggregate result of ExtractNextflow.
type NextflowFeatures struct {
	Processes []NfProcess
	Includes  []NfInclude
	Workflows []NfWorkflow
}

// ExtractNextflow digests t (§6's Digest transform) and walks the result
// collecting every process, include, and workflow declaration found
// anywhere in the tree.
func ExtractNextflow(t Tree) NextflowFeatures {
	var feats NextflowFeatures
	walkNextflow(Digest(t, DefaultDigestConfig()), &feats)
	return feats
}

// hasPathSuffix reports whether path ends with suffix, in order.
func hasPathSuffix(path, suffix []string) bool {
	if len(path) < len(suffix) {
		return false
	}
	tail := path[len(path)-len(suffix):]
	for i := range suffix {
		if tail[i] != suffix[i] {
			return false
		}
	}
	return true
}

// firstIdentifier returns the value of children[0] if it is an IDENTIFIER
// leaf, along with the remaining children — the keyword a command_expression
// opens with, and its arguments.
func firstIdentifier(children []interface{}) (kw string, rest []interface{}, ok bool) {
	if len(children) == 0 {
		return "", nil, false
	}
	l, isLeaf := children[0].(DigestLeaf)
	if !isLeaf || l.Leaf != TermIdent {
		return "", nil, false
	}
	return l.Value, children[1:], true
}

func walkNextflow(node interface{}, feats *NextflowFeatures) {
	dr, ok := node.(DigestRule)
	if !ok {
		return
	}
	if hasPathSuffix(dr.Rule, statementSuffix) {
		if kw, rest, ok := firstIdentifier(dr.Children); ok {
			switch kw {
			case kwProcess:
				feats.Processes = append(feats.Processes, extractProcess(rest))
				return
			case kwInclude:
				if path, ok := lastStringLiteral(dr); ok {
					feats.Includes = append(feats.Includes, NfInclude{Path: path})
				}
				return
			case kwWorkflow:
				feats.Workflows = append(feats.Workflows, extractWorkflow(rest))
				return
			}
		}
	}
	for _, c := range dr.Children {
		walkNextflow(c, feats)
	}
}

// extractProcess mirrors the `process name { ... }` shape: the keyword is
// already consumed by firstIdentifier, so rest's first element is the name
// identifier and the remainder is the process body to search for nested
// container/conda/template commands.
func extractProcess(rest []interface{}) NfProcess {
	var proc NfProcess
	if len(rest) > 0 {
		if l, isLeaf := rest[0].(DigestLeaf); isLeaf && l.Leaf == TermIdent {
			proc.Name = l.Value
		}
	}
	for _, c := range rest {
		collectProcessBody(c, &proc)
	}
	return proc
}

// extractWorkflow distinguishes the named form (`workflow name { ... }`,
// leading identifier) from the anonymous default form (`workflow { ... }`,
// body directly after the keyword).
func extractWorkflow(rest []interface{}) NfWorkflow {
	if len(rest) > 0 {
		if l, isLeaf := rest[0].(DigestLeaf); isLeaf && l.Leaf == TermIdent {
			return NfWorkflow{Name: l.Value}
		}
	}
	return NfWorkflow{}
}

// collectProcessBody looks for nested container/conda/template commands
// anywhere under node, using the same rule-path-suffix-plus-first-identifier
// rule as the top-level walk.
func collectProcessBody(node interface{}, proc *NfProcess) {
	dr, ok := node.(DigestRule)
	if !ok {
		return
	}
	if hasPathSuffix(dr.Rule, statementSuffix) {
		if kw, rest, ok := firstIdentifier(dr.Children); ok {
			switch kw {
			case kwContainer:
				if v, found := lastStringLiteralAmong(rest); found && !isFilteredContainer(v) {
					proc.Containers = append(proc.Containers, v)
				}
				return
			case kwConda:
				if v, found := lastStringLiteralAmong(rest); found {
					proc.Condas = append(proc.Condas, v)
				}
				return
			case kwTemplate:
				if v, found := lastStringLiteralAmong(rest); found {
					proc.Templates = append(proc.Templates, v)
				}
				return
			}
		}
	}
	for _, c := range dr.Children {
		collectProcessBody(c, proc)
	}
}

// isFilteredContainer drops the literal engine names a container command
// sometimes carries instead of an image reference.
func isFilteredContainer(v string) bool {
	return v == "singularity" || v == "docker"
}

// lastStringLiteral finds the value of the last STRING_LITERAL leaf
// anywhere beneath node.
func lastStringLiteral(node interface{}) (string, bool) {
	var found string
	var ok bool
	var visit func(n interface{})
	visit = func(n interface{}) {
		switch v := n.(type) {
		case DigestLeaf:
			if v.Leaf == TermStringLiteral {
				found = v.Value
				ok = true
			}
		case DigestRule:
			for _, c := range v.Children {
				visit(c)
			}
		}
	}
	visit(node)
	return found, ok
}

// lastStringLiteralAmong applies lastStringLiteral across a slice of
// digested nodes, keeping the last match found.
func lastStringLiteralAmong(nodes []interface{}) (string, bool) {
	var found string
	var ok bool
	for _, n := range nodes {
		if v, matched := lastStringLiteral(n); matched {
			found, ok = v, true
		}
	}
	return found, ok
}
