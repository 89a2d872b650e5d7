// Package prompt resolves and renders generation prompt templates.
//
// Operator-supplied templates use the same mustache-style syntax the stored
// configuration has always used: {{name}} / {{{name}}} placeholders,
// {{#if name}}...{{else}}...{{/if}} boolean-gated blocks, and
// {{#each name}}...{{this.key}}...{{/each}} list blocks. Rendering happens
// entirely before the provider call and is independent of any network access.
package prompt

import (
	"strings"
)

// Bindings are the typed inputs a template is rendered against. Values may be
// string (placeholder), bool (block gate), or []map[string]string (each
// block). Absent or unknown names render as empty and gate blocks off, so a
// rendered prompt never contains unresolved {{...}} tokens.
type Bindings map[string]interface{}

type node interface {
	render(b *strings.Builder, scope Bindings, item map[string]string)
}

type textNode struct{ text string }

func (n textNode) render(b *strings.Builder, _ Bindings, _ map[string]string) {
	b.WriteString(n.text)
}

type placeholderNode struct{ name string }

func (n placeholderNode) render(b *strings.Builder, scope Bindings, item map[string]string) {
	if item != nil {
		if key, ok := strings.CutPrefix(n.name, "this."); ok {
			b.WriteString(item[key])
			return
		}
	}
	if v, ok := scope[n.name]; ok {
		if s, ok := v.(string); ok {
			b.WriteString(s)
		}
	}
}

type ifNode struct {
	name string
	then []node
	els  []node
}

func (n ifNode) render(b *strings.Builder, scope Bindings, item map[string]string) {
	branch := n.els
	if truthy(scope[n.name]) {
		branch = n.then
	}
	for _, child := range branch {
		child.render(b, scope, item)
	}
}

type eachNode struct {
	name string
	body []node
}

func (n eachNode) render(b *strings.Builder, scope Bindings, _ map[string]string) {
	items, _ := scope[n.name].([]map[string]string)
	for _, it := range items {
		for _, child := range n.body {
			child.render(b, scope, it)
		}
	}
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) != ""
	case []map[string]string:
		return len(t) > 0
	default:
		return false
	}
}

// Render substitutes bindings into template. It is total: malformed block
// markup degrades to literal text and unknown names render empty, so the
// result is always a usable prompt string.
func Render(template string, bindings Bindings) string {
	nodes, _, _ := parse(template, 0, true)
	var b strings.Builder
	for _, n := range nodes {
		n.render(&b, bindings, nil)
	}
	return b.String()
}

// parse reads nodes from pos until end of input or a block terminator
// ({{else}}, {{/if}}, {{/each}}), returning the terminator it stopped on. At
// the root there is no enclosing block, so a stray terminator is kept as
// literal text instead of cutting the template short.
func parse(s string, pos int, root bool) ([]node, string, int) {
	var nodes []node
	for pos < len(s) {
		open := strings.Index(s[pos:], "{{")
		if open < 0 {
			nodes = append(nodes, textNode{text: s[pos:]})
			return nodes, "", len(s)
		}
		if open > 0 {
			nodes = append(nodes, textNode{text: s[pos : pos+open]})
		}
		pos += open

		tag, body, next, ok := readTag(s, pos)
		if !ok {
			// Unterminated braces: keep the rest as literal text.
			nodes = append(nodes, textNode{text: s[pos:]})
			return nodes, "", len(s)
		}

		switch tag {
		case "else", "/if", "/each":
			if root {
				nodes = append(nodes, textNode{text: s[pos:next]})
				pos = next
				continue
			}
			return nodes, tag, next
		case "#if":
			then, stop, after := parse(s, next, false)
			var els []node
			if stop == "else" {
				els, stop, after = parse(s, after, false)
			}
			if stop != "/if" {
				// Unclosed block: treat the opening tag as literal text.
				nodes = append(nodes, textNode{text: s[pos:next]})
				pos = next
				continue
			}
			nodes = append(nodes, ifNode{name: body, then: then, els: els})
			pos = after
		case "#each":
			inner, stop, after := parse(s, next, false)
			if stop != "/each" {
				nodes = append(nodes, textNode{text: s[pos:next]})
				pos = next
				continue
			}
			nodes = append(nodes, eachNode{name: body, body: inner})
			pos = after
		default:
			nodes = append(nodes, placeholderNode{name: body})
			pos = next
		}
	}
	return nodes, "", pos
}

// readTag reads one {{...}} or {{{...}}} tag starting at pos and classifies
// it. It returns the tag kind, the trimmed name (for placeholders and block
// openers), and the position just past the tag.
func readTag(s string, pos int) (tag, body string, next int, ok bool) {
	triple := strings.HasPrefix(s[pos:], "{{{")
	openLen, closer := 2, "}}"
	if triple {
		openLen, closer = 3, "}}}"
	}
	end := strings.Index(s[pos+openLen:], closer)
	if end < 0 {
		return "", "", 0, false
	}
	inner := strings.TrimSpace(s[pos+openLen : pos+openLen+end])
	next = pos + openLen + end + len(closer)

	switch {
	case inner == "else":
		return "else", "", next, true
	case inner == "/if":
		return "/if", "", next, true
	case inner == "/each":
		return "/each", "", next, true
	case strings.HasPrefix(inner, "#if "):
		return "#if", strings.TrimSpace(inner[4:]), next, true
	case strings.HasPrefix(inner, "#each "):
		return "#each", strings.TrimSpace(inner[6:]), next, true
	default:
		return "", inner, next, true
	}
}
