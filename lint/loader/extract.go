package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docsascode/doclint/lint/doc"
)

// Reference extraction, one function per document type. Each returns the
// document's reference fields as field name -> ordered target IDs, preserving
// declaration order so duplicate dangling mentions keep their multiplicity.

type extractFunc func(raw map[string]any) map[string][]string

var extractors = map[doc.Type]extractFunc{
	doc.Screen:      extractScreen,
	doc.Component:   extractComponent,
	doc.Requirement: extractRequirement,
	doc.Rule:        extractRule,
	doc.Flow:        extractFlow,
}

func extractScreen(raw map[string]any) map[string][]string {
	refs := refMap{}
	refs.addList("components", idList(raw["components"]))
	refs.addList("requirements", idList(raw["requirements"]))
	refs.addList("rules", idList(raw["rules"]))
	refs.addList("flows", idList(raw["flows"]))
	return refs
}

func extractComponent(raw map[string]any) map[string][]string {
	refs := refMap{}
	refs.addList("screens", idList(raw["screens"]))

	// Validation entries point at rules or requirements; either way the
	// target is an ID to resolve.
	var validations []string
	for _, v := range asList(raw["validations"]) {
		if ref := refOf(v); ref != "" {
			validations = append(validations, ref)
		}
	}
	refs.addList("validations", validations)

	// behavior_refs carries flow IDs; free-form notes in the same list are
	// not references.
	var behaviors []string
	for _, b := range asList(raw["behavior_refs"]) {
		if s := scalar(b); strings.HasPrefix(s, "UC-") {
			behaviors = append(behaviors, s)
		}
	}
	refs.addList("behavior_refs", behaviors)
	return refs
}

func extractRequirement(raw map[string]any) map[string][]string {
	refs := refMap{}
	scope := asMap(raw["scope"])
	refs.addOne("scope.screen", scalar(scope["screen"]))
	refs.addOne("scope.component", scalar(scope["component"]))

	links := asMap(raw["links"])
	refs.addList("links.rules", idList(links["rules"]))
	refs.addList("links.flows", idList(links["flows"]))
	refs.addList("links.messages", idList(links["messages"]))

	// Messages shown by alternative behavior branches are references too.
	var shown []string
	behavior := asMap(raw["behavior"])
	for _, alt := range asList(behavior["alternatives"]) {
		for _, act := range asList(asMap(alt)["then"]) {
			if mid := scalar(asMap(act)["show_message"]); mid != "" {
				shown = append(shown, mid)
			}
		}
	}
	refs.addList("behavior.show_message", shown)
	return refs
}

func extractRule(raw map[string]any) map[string][]string {
	refs := refMap{}
	applies := asMap(raw["applies_to"])
	refs.addList("applies_to.screens", idList(applies["screens"]))
	refs.addList("applies_to.components", idList(applies["components"]))
	refs.addOne("message.ref", scalar(asMap(raw["message"])["ref"]))
	return refs
}

func extractFlow(raw map[string]any) map[string][]string {
	refs := refMap{}
	trigger := asMap(raw["trigger"])
	refs.addOne("trigger.screen", scalar(trigger["screen"]))
	refs.addOne("trigger.component", scalar(trigger["component"]))

	// Flow steps carry refs: lists anywhere in the step tree. Collect every
	// entry that looks like a corpus ID; step lists keep document order and
	// map keys are walked sorted.
	var stepRefs []string
	scanRefs(raw["main_flow"], &stepRefs)
	scanRefs(raw["alternative_flows"], &stepRefs)
	refs.addList("steps.refs", stepRefs)
	return refs
}

// scanRefs walks a step tree collecting the entries of every "refs" list
// that classify as corpus IDs. Map keys are visited in sorted order so the
// collected sequence is the same on every run.
func scanRefs(v any, out *[]string) {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			scanRefs(item, out)
		}
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k == "refs" {
				for _, ref := range asList(node[k]) {
					if s := scalar(ref); s != "" {
						if _, ok := doc.TypeForID(s); ok {
							*out = append(*out, s)
						}
					}
				}
				continue
			}
			scanRefs(node[k], out)
		}
	}
}

// refMap accumulates reference fields, omitting empty ones so documents
// without a given field have no entry at all.
type refMap map[string][]string

func (m refMap) addList(field string, ids []string) {
	if len(ids) > 0 {
		m[field] = ids
	}
}

func (m refMap) addOne(field, id string) {
	if id != "" {
		m[field] = []string{id}
	}
}

// scalar renders a YAML scalar as a string; non-scalars come back empty
func scalar(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case int, int64, float64, bool:
		return fmt.Sprintf("%v", s)
	default:
		return ""
	}
}

// idOf accepts both scalar IDs and {id: ...} entries, as the corpus mixes
// the two in screen component lists.
func idOf(v any) string {
	if m, ok := v.(map[string]any); ok {
		return scalar(m["id"])
	}
	return scalar(v)
}

// refOf accepts scalar refs and {ref: ...} validation entries
func refOf(v any) string {
	if m, ok := v.(map[string]any); ok {
		return scalar(m["ref"])
	}
	return scalar(v)
}

func idList(v any) []string {
	var ids []string
	for _, item := range asList(v) {
		if id := idOf(item); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
