package routemap

import "strings"

// node represents one path segment's position in the trie. Literal segments
// descend through children; a segment declared as a parameter at this
// position descends through the single placeholder child.
type node[H any] struct {
	children    map[string]*node[H]
	placeholder *node[H]
	group       HandlerGroup[H]
}

func newNode[H any]() *node[H] {
	return &node[H]{children: make(map[string]*node[H])}
}

// isPlaceholder reports whether segment is a parameter capture point: a
// brace-wrapped segment whose inner text matches one of the declared
// parameter full tokens.
func isPlaceholder(segment string, defs []ParamDef) bool {
	if len(segment) < 2 || segment[0] != '{' || segment[len(segment)-1] != '}' {
		return false
	}
	inner := segment[1 : len(segment)-1]
	for _, def := range defs {
		if def.Full == inner {
			return true
		}
	}
	return false
}

// descend walks (creating as needed) the trie path for the given template
// segments and returns the terminal node.
func (n *node[H]) descend(segments []string, defs []ParamDef) *node[H] {
	cur := n
	for _, segment := range segments {
		if isPlaceholder(segment, defs) {
			if cur.placeholder == nil {
				cur.placeholder = newNode[H]()
			}
			cur = cur.placeholder
			continue
		}
		child, ok := cur.children[segment]
		if !ok {
			child = newNode[H]()
			cur.children[segment] = child
		}
		cur = child
	}
	return cur
}

// find walks the trie for a normalized request path, collecting placeholder
// values in traversal order. A literal child always wins over the placeholder
// child at the same level; a static group on the current node is the last
// resort and short-circuits the walk, yielding the path with the static
// prefix stripped. Returns ErrNotFound when no entry terminates the walk.
func (n *node[H]) find(path string) (HandlerGroup[H], []string, string, error) {
	cur := n
	var values []string

	for _, segment := range splitPath(path) {
		if child, ok := cur.children[segment]; ok {
			cur = child
			continue
		}
		if cur.placeholder != nil {
			values = append(values, segment)
			cur = cur.placeholder
			continue
		}
		if static, ok := cur.group.(*StaticGroup[H]); ok {
			rewritten := ""
			if static.Path != "/" {
				rewritten = strings.TrimPrefix(path, static.Path)
				if rewritten == "" {
					rewritten = "/"
				}
			}
			return static, values, rewritten, nil
		}
		return nil, nil, "", ErrNotFound
	}

	if cur.group == nil {
		return nil, nil, "", ErrNotFound
	}
	return cur.group, values, "", nil
}

// drain releases the subtree below n iteratively. Adversarial declarations
// can nest tens of thousands of segments, and releasing such a chain through
// recursion would grow the call stack with the route depth.
func (n *node[H]) drain() {
	stack := []*node[H]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for key, child := range cur.children {
			stack = append(stack, child)
			delete(cur.children, key)
		}
		if cur.placeholder != nil {
			stack = append(stack, cur.placeholder)
			cur.placeholder = nil
		}
		cur.group = nil
	}
}
