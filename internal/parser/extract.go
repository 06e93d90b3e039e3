package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type ExtractOptions struct {
	// Normalize trims surrounding whitespace and applies Unicode NFC to
	// every code before it is collected.
	Normalize bool
}

// ExtractCodes collects parsed.searchItems[].variation.items[].itemKey.catalogItemCode
// in traversal order. Missing or mistyped structure at any level contributes nothing.
func ExtractCodes(doc Document) []string {
	return ExtractCodesWith(doc, ExtractOptions{})
}

func ExtractCodesWith(doc Document, opts ExtractOptions) []string {
	var codes []string

	searchItems, _ := asList(lookup(doc.Root, "parsed", "searchItems"))
	for _, si := range searchItems {
		variation, ok := field(si, "variation")
		if !ok || !truthy(variation) {
			continue
		}
		items, _ := asList(field(variation, "items"))
		for _, it := range items {
			itemKey, ok := asMap(field(it, "itemKey"))
			if !ok {
				itemKey = map[string]any{}
			}
			raw, ok := field(itemKey, "catalogItemCode")
			if !ok || raw == nil {
				continue
			}
			code := codeText(raw)
			if opts.Normalize {
				code = norm.NFC.String(strings.TrimSpace(code))
			}
			codes = append(codes, code)
		}
	}
	return codes
}

// field returns v[key] when v is an object holding key.
func field(v any, key string) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out, ok := m[key]
	return out, ok
}

func lookup(v any, path ...string) (any, bool) {
	cur := v
	for _, key := range path {
		next, ok := field(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func asMap(v any, ok bool) (map[string]any, bool) {
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any, ok bool) ([]any, bool) {
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// truthy follows JSON-value truthiness: null, false, zero, "" and empty
// containers are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	}
	return true
}

func codeText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
