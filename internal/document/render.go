package document

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render re-emits the document as canonical compact text. Nodes matching the
// style policy render in flow form, everything else in block form. A
// single-key mapping directly inside a flow sequence renders as a bare
// key: value pair, so no post-render text patching is needed. Output always
// starts with the document marker and uses no line wrapping or padding
// inside flow collections.
func (d *Document) Render(policy *StylePolicy) string {
	var b strings.Builder
	b.WriteString("---\n")
	if d.root == nil {
		return b.String()
	}
	r := renderer{policy: policy}
	for _, line := range r.blockLines(d.root, nil) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

type renderer struct {
	policy *StylePolicy
}

func (r *renderer) blockLines(node *yaml.Node, path []string) []string {
	switch node.Kind {
	case yaml.MappingNode:
		return r.mappingLines(node, path)
	case yaml.SequenceNode:
		return r.sequenceLines(node, path)
	default:
		return []string{scalarText(node, false)}
	}
}

func (r *renderer) mappingLines(node *yaml.Node, path []string) []string {
	var lines []string
	for _, e := range Entries(node) {
		lines = append(lines, commentLines(e.Key.HeadComment)...)

		key := scalarText(e.Key, false) + ":"
		childPath := child(path, e.Key.Value)
		switch {
		case e.Value.Kind == yaml.ScalarNode:
			lines = append(lines, withComment(key+" "+scalarText(e.Value, false), e.Value.LineComment, e.Key.LineComment))
		case len(e.Value.Content) == 0:
			lines = append(lines, key+" "+emptyCollection(e.Value))
		case r.policy.Inline(childPath):
			lines = append(lines, withComment(key+" "+r.flow(e.Value, false), e.Value.LineComment, e.Key.LineComment))
		default:
			lines = append(lines, withComment(key, e.Key.LineComment))
			lines = append(lines, indent(r.blockLines(e.Value, childPath))...)
		}
	}
	return lines
}

func (r *renderer) sequenceLines(node *yaml.Node, path []string) []string {
	var lines []string
	for i, item := range node.Content {
		childPath := child(path, strconv.Itoa(i))
		switch {
		case item.Kind == yaml.ScalarNode:
			lines = append(lines, withComment("- "+scalarText(item, false), item.LineComment))
		case len(item.Content) == 0:
			lines = append(lines, "- "+emptyCollection(item))
		case r.policy.Inline(childPath):
			lines = append(lines, "- "+r.flow(item, false))
		default:
			sub := r.blockLines(item, childPath)
			lines = append(lines, "- "+sub[0])
			for _, l := range sub[1:] {
				lines = append(lines, "  "+l)
			}
		}
	}
	return lines
}

// flow renders a node on a single line. bareOK is true when the node is a
// non-final element of a flow sequence, the one place a single-pair mapping
// drops its braces (a trailing mapping keeps them, e.g. [2, {dex: 2}]).
func (r *renderer) flow(node *yaml.Node, bareOK bool) string {
	switch node.Kind {
	case yaml.MappingNode:
		entries := Entries(node)
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, scalarText(e.Key, true)+": "+r.flow(e.Value, false))
		}
		if bareOK && len(entries) == 1 {
			return parts[0]
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case yaml.SequenceNode:
		parts := make([]string, 0, len(node.Content))
		for i, item := range node.Content {
			parts = append(parts, r.flow(item, i < len(node.Content)-1))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return scalarText(node, true)
	}
}

func scalarText(n *yaml.Node, flow bool) string {
	if n.Tag == "!!null" {
		return "null"
	}
	if n.Tag != "" && n.Tag != "!!str" {
		return n.Value
	}
	if needsQuote(n.Value, flow) {
		return strconv.Quote(n.Value)
	}
	return n.Value
}

// needsQuote reports whether a string scalar cannot be emitted plain without
// changing its meaning.
func needsQuote(s string, flow bool) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return true
	}
	if looksTyped(s) {
		return true
	}
	if strings.ContainsAny(s, "\n\"'\\") {
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") || strings.Contains(s, " #") {
		return true
	}
	switch s[0] {
	case '!', '&', '*', '?', '|', '>', '%', '@', '`', '[', ']', '{', '}', ',', '#':
		return true
	case '-':
		if len(s) > 1 && s[1] == ' ' {
			return true
		}
	}
	if flow && strings.ContainsAny(s, ",[]{}:") {
		return true
	}
	return false
}

// looksTyped reports whether a plain rendering of s would re-parse as a
// non-string scalar.
func looksTyped(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "on", "off", "null", "~":
		return true
	}
	return false
}

func emptyCollection(n *yaml.Node) string {
	if n.Kind == yaml.SequenceNode {
		return "[]"
	}
	return "{}"
}

func commentLines(comment string) []string {
	if comment == "" {
		return nil
	}
	return strings.Split(comment, "\n")
}

func withComment(line string, comments ...string) string {
	for _, c := range comments {
		if c != "" {
			return line + " " + c
		}
	}
	return line
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "  " + l
	}
	return out
}

func child(path []string, seg string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, seg)
}
