package template

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
	ifPrefix   = "{{#if"
	endIf      = "{{/if}}"
)

// operators in match order: the three-character forms must be tried before
// their two-character prefixes.
var operators = []string{"===", "!==", "==", "!="}

// Parse tokenizes template source into an AST. Parsing never fails:
// malformed tokens become literals and render verbatim.
func Parse(src string) []Node {
	var nodes []Node
	pos := 0

	for pos < len(src) {
		idx := strings.Index(src[pos:], openDelim)
		if idx < 0 {
			nodes = append(nodes, Literal{Text: src[pos:]})
			break
		}
		if idx > 0 {
			nodes = append(nodes, Literal{Text: src[pos : pos+idx]})
		}
		at := pos + idx

		if hasIfAt(src, at) {
			node, next, ok := parseConditional(src, at)
			if ok {
				nodes = append(nodes, node)
				pos = next
				continue
			}
			// No closing token: the opening run stays verbatim.
			nodes = append(nodes, Literal{Text: src[at:]})
			break
		}

		node, next, ok := parseVariable(src, at)
		if !ok {
			nodes = append(nodes, Literal{Text: src[at:]})
			break
		}
		nodes = append(nodes, node)
		pos = next
	}

	return nodes
}

func hasIfAt(src string, at int) bool {
	if !strings.HasPrefix(src[at:], ifPrefix) {
		return false
	}
	rest := src[at+len(ifPrefix):]
	return rest != "" && (rest[0] == ' ' || rest[0] == '\t')
}

// parseVariable consumes {{ path }}. A token whose inner text is not a
// valid dotted path is returned as a verbatim literal.
func parseVariable(src string, at int) (Node, int, bool) {
	end := strings.Index(src[at:], closeDelim)
	if end < 0 {
		return nil, 0, false
	}
	next := at + end + len(closeDelim)
	inner := strings.TrimSpace(src[at+len(openDelim) : at+end])
	if !validPath(inner) {
		return Literal{Text: src[at:next]}, next, true
	}
	return Variable{Path: inner}, next, true
}

// parseConditional consumes {{#if cond}} body {{/if}}. Missing head
// terminators or a missing {{/if}} report !ok and the caller falls back to
// verbatim output.
func parseConditional(src string, at int) (Node, int, bool) {
	headEnd := strings.Index(src[at:], closeDelim)
	if headEnd < 0 {
		return nil, 0, false
	}
	cond := strings.TrimSpace(src[at+len(ifPrefix) : at+headEnd])
	bodyStart := at + headEnd + len(closeDelim)

	bodyEnd := strings.Index(src[bodyStart:], endIf)
	if bodyEnd < 0 {
		return nil, 0, false
	}
	body := src[bodyStart : bodyStart+bodyEnd]
	next := bodyStart + bodyEnd + len(endIf)

	node := Conditional{Body: Parse(body)}
	node.Path, node.Op, node.Literal, node.IsBool, node.Parsed = parseCondition(cond)
	return node, next, true
}

// parseCondition splits "path OP literal" at the first recognized
// operator, strips surrounding quotes from the literal, and flags bare
// true/false literals for boolean coercion.
func parseCondition(cond string) (path, op, literal string, isBool, ok bool) {
	op, idx := findOperator(cond)
	if idx < 0 {
		return "", "", "", false, false
	}
	path = strings.TrimSpace(cond[:idx])
	literal = strings.TrimSpace(cond[idx+len(op):])
	if !validPath(path) || literal == "" {
		return "", "", "", false, false
	}

	if len(literal) >= 2 {
		first, last := literal[0], literal[len(literal)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return path, op, literal[1 : len(literal)-1], false, true
		}
	}
	if literal == "true" || literal == "false" {
		return path, op, literal, true, true
	}
	return path, op, literal, false, true
}

// findOperator returns the leftmost operator occurrence, preferring the
// longer form at any given position.
func findOperator(cond string) (string, int) {
	for i := 0; i < len(cond); i++ {
		for _, op := range operators {
			if strings.HasPrefix(cond[i:], op) {
				return op, i
			}
		}
	}
	return "", -1
}

// validPath accepts identifier("." identifier)* paths.
func validPath(p string) bool {
	if p == "" {
		return false
	}
	for _, part := range strings.Split(p, ".") {
		if !validIdent(part) {
			return false
		}
	}
	return true
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
