package main

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

// asyncWrapperType has no member shape worth documenting.
const asyncWrapperType = "Promise"

// Listener members are rendered after every other member so the types they
// reference are listed last.
var listenerMemberNames = map[string]struct{}{
	"addListener":    {},
	"removeListener": {},
}

func isListenerMember(node *DeclarationNode) bool {
	_, ok := listenerMemberNames[node.Name]
	return ok
}

type htmlRenderer struct {
	index TypeIndex
}

// renderDeclaration renders one plugin declaration: its methods followed by
// the interfaces those methods reference.
func renderDeclaration(decl *DeclarationNode, index TypeIndex) []byte {
	var buf bytes.Buffer
	r := htmlRenderer{index: index}
	r.renderPlugin(&buf, decl)
	return buf.Bytes()
}

func (r *htmlRenderer) renderPlugin(w io.Writer, decl *DeclarationNode) {
	fmt.Fprintf(w, "<div class=\"api-plugin\" data-plugin=\"%s\">\n", decl.Name)
	fmt.Fprintf(w, "<h2 class=\"api-plugin-name\">%s</h2>\n", decl.Name)

	refs := newTypeSet()
	fmt.Fprintln(w, "<div class=\"api-methods\">")
	for _, member := range orderedMembers(decl.Children) {
		if len(member.Signatures) == 0 {
			continue
		}
		r.renderMethod(w, member)
		for _, t := range referencedTypes(member.Signatures[0]) {
			refs.add(t)
		}
	}
	fmt.Fprintln(w, "</div>")

	fmt.Fprintln(w, "<div class=\"api-interfaces\">")
	for _, t := range refs.types() {
		if t.Name == asyncWrapperType {
			continue
		}
		r.renderInterface(w, t)
	}
	fmt.Fprintln(w, "</div>")
	fmt.Fprintln(w, "</div>")
}

// orderedMembers returns non-listener members followed by listener members,
// each group in declaration order.
func orderedMembers(children []*DeclarationNode) []*DeclarationNode {
	ordered := make([]*DeclarationNode, 0, len(children))
	var listeners []*DeclarationNode
	for _, c := range children {
		if c == nil {
			continue
		}
		if isListenerMember(c) {
			listeners = append(listeners, c)
			continue
		}
		ordered = append(ordered, c)
	}
	return append(ordered, listeners...)
}

// renderMethod renders the first signature of member. Further overloads are
// not documented.
func (r *htmlRenderer) renderMethod(w io.Writer, member *DeclarationNode) {
	sig := member.Signatures[0]
	fmt.Fprintf(w, "<div class=\"api-method\" id=\"method-%s\">\n", member.Name)
	fmt.Fprintf(w, "<h3 class=\"api-method-header\">%s</h3>\n", member.Name)

	params := make([]string, 0, len(sig.Parameters))
	for _, p := range sig.Parameters {
		params = append(params, paramLabel(p)+": "+paramType(p.Type))
	}
	fmt.Fprintf(w, "<div class=\"api-method-signature\"><span class=\"api-method-name\">%s</span>(%s): %s",
		member.Name, strings.Join(params, ", "), returnType(sig.Type))
	if short := sig.Comment.Short(); short != "" {
		fmt.Fprintf(w, " <span class=\"api-method-comment\">%s</span>", escapeComment(short))
	}
	fmt.Fprintln(w, "</div>")

	fmt.Fprintln(w, "<div class=\"api-method-params\">")
	for _, p := range sig.Parameters {
		fmt.Fprintf(w, "<div class=\"api-param\">%s: %s", paramLabel(p), paramType(p.Type))
		if text := p.Comment.Full(); text != "" {
			fmt.Fprintf(w, "<div class=\"api-param-comment\">%s</div>", escapeComment(text))
		}
		fmt.Fprintln(w, "</div>")
	}
	fmt.Fprintln(w, "</div>")
	fmt.Fprintln(w, "</div>")
}

// renderInterface renders the member list of a referenced structural type.
// Types missing from the index render with an empty body.
func (r *htmlRenderer) renderInterface(w io.Writer, t *TypeRef) {
	fmt.Fprintf(w, "<div class=\"api-interface\" id=\"%s\">\n", interfaceAnchor(t))
	fmt.Fprintf(w, "<div class=\"api-line\">interface <span class=\"api-interface-name\">%s</span> {</div>\n", t.Name)
	if t.HasID() {
		if decl, ok := r.index.Lookup(*t.ID); ok {
			for _, child := range decl.Children {
				if child == nil {
					continue
				}
				fmt.Fprintf(w, "<div class=\"api-line api-indent\">%s:", memberLabel(child.Name, child.Flags.IsOptional))
				if child.Type != nil {
					fmt.Fprintf(w, " %s", typedReference(child.Type.ID, child.Type.Name))
				}
				fmt.Fprintln(w, ";</div>")
			}
		}
	}
	fmt.Fprintln(w, "<div class=\"api-line\">}</div>")
	fmt.Fprintln(w, "</div>")
}

// interfaceAnchor names the block's HTML id. Resolved types carry their id
// so distinct types sharing a name stay unique.
func interfaceAnchor(t *TypeRef) string {
	if t.HasID() {
		return "interface-" + t.Name + "-" + strconv.Itoa(*t.ID)
	}
	return "interface-" + t.Name
}

func paramLabel(p *Parameter) string {
	return memberLabel(p.Name, p.Flags.IsOptional)
}

func memberLabel(name string, optional bool) string {
	label := fmt.Sprintf("<span class=\"api-param-name\">%s</span>", name)
	if optional {
		label += "<span class=\"api-optional\">?</span>"
	}
	return label
}

// paramType renders a type in parameter position. Discriminants other than
// reference and intrinsic collapse to "any".
func paramType(t *TypeRef) string {
	var base string
	switch t.Kind() {
	case KindReference:
		base = typedReference(t.ID, t.Name)
	case KindIntrinsic:
		base = t.Name
	default:
		base = "any"
	}
	return base + typeArguments(t)
}

// returnType renders a type in return position. Unlike paramType it never
// falls back to "any": anything but a resolved reference renders its name.
func returnType(t *TypeRef) string {
	return typeArgument(t) + typeArguments(t)
}

// typeArgument renders a type without its own type arguments.
func typeArgument(t *TypeRef) string {
	if t.Kind() == KindReference && t.HasID() {
		return typedReference(t.ID, t.Name)
	}
	return t.displayName()
}

func typeArguments(t *TypeRef) string {
	if t == nil || len(t.TypeArguments) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("&lt;")
	for _, arg := range t.TypeArguments {
		sb.WriteString(typeArgument(arg))
	}
	sb.WriteString("&gt;")
	return sb.String()
}

// typedReference emits the element downstream tooling turns into a link.
func typedReference(id *int, name string) string {
	if id == nil {
		return fmt.Sprintf("<api-type>%s</api-type>", name)
	}
	return fmt.Sprintf("<api-type type-id=\"%s\">%s</api-type>", strconv.Itoa(*id), name)
}

func escapeComment(text string) string {
	return html.EscapeString(cleanComment(text))
}

// cleanComment drops the JSDoc "*" gutter extractors sometimes leave in long
// comment text, then the indentation shared by the remaining lines.
func cleanComment(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if hasCommentGutter(lines) {
		for i, line := range lines {
			lines[i] = strings.TrimPrefix(strings.TrimLeft(line, " \t"), "*")
		}
	}
	indent := commonIndent(lines)
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = ""
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// hasCommentGutter reports whether every non-blank line starts with a bare
// "*" or "* ". Bold markers ("**") do not count.
func hasCommentGutter(lines []string) bool {
	found := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if trimmed != "*" && !strings.HasPrefix(trimmed, "* ") {
			return false
		}
		found = true
	}
	return found
}

func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines {
		body := strings.TrimLeft(line, " \t")
		if body == "" {
			continue
		}
		if n := len(line) - len(body); indent == -1 || n < indent {
			indent = n
		}
	}
	return max(indent, 0)
}
