package panels

import (
	"strings"

	"github.com/alexisbeaulieu97/panelkit/internal/focus"
)

// AutoFocus tokens accepted by ParseAutoFocus. Any other non-empty value is a
// custom selector.
const (
	AutoFocusNone           = "none"
	AutoFocusLastFocused    = "last-focused"
	AutoFocusDefaultElement = "default-element"
)

// AutoFocusKind classifies an AutoFocus policy.
type AutoFocusKind int

const (
	LastFocused AutoFocusKind = iota
	NoAutoFocus
	DefaultElement
	CustomSelector
)

// AutoFocus decides where focus goes when a panel becomes active. The zero
// value restores the last focused element.
type AutoFocus struct {
	Kind     AutoFocusKind
	Selector string
}

// ParseAutoFocus maps a policy string onto an AutoFocus. An empty string is
// the default last-focused policy.
func ParseAutoFocus(value string) AutoFocus {
	value = strings.TrimSpace(value)
	switch value {
	case "", AutoFocusLastFocused:
		return AutoFocus{Kind: LastFocused}
	case AutoFocusNone:
		return AutoFocus{Kind: NoAutoFocus}
	case AutoFocusDefaultElement:
		return AutoFocus{Kind: DefaultElement}
	default:
		return AutoFocus{Kind: CustomSelector, Selector: value}
	}
}

// Selector builds a custom selector policy.
func Selector(selector string) AutoFocus {
	return ParseAutoFocus(selector)
}

func (a AutoFocus) String() string {
	switch a.Kind {
	case NoAutoFocus:
		return AutoFocusNone
	case DefaultElement:
		return AutoFocusDefaultElement
	case CustomSelector:
		return a.Selector
	default:
		return AutoFocusLastFocused
	}
}

// Policy resolves the container policy this AutoFocus registers. The entry
// rule is last-focused unless the policy says otherwise, and only custom
// selectors carry a fallback.
func (a AutoFocus) Policy() (focus.Policy, bool) {
	switch a.Kind {
	case NoAutoFocus:
		return focus.Policy{}, false
	case LastFocused:
		return focus.Policy{EntryRule: focus.EnterLastFocused}, true
	case DefaultElement:
		return focus.Policy{EntryRule: focus.EnterDefaultElement}, true
	default:
		return focus.Policy{EntryRule: focus.EnterDefaultElement, FallbackSelector: a.Selector}, true
	}
}
