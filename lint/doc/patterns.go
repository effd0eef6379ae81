package doc

import (
	"regexp"
	"strings"
)

// ID patterns per document type. The corpus convention uses Portuguese
// screen prefixes (TELA = screen) and two-letter requirement/rule codes.
var idPatterns = map[Type]*regexp.Regexp{
	Screen:      regexp.MustCompile(`^TELA_[A-Z0-9_]+$`),
	Component:   regexp.MustCompile(`^(INP|BTN|LBL|SEL|TAB|GRD|CHK|RAD|TXT|LNK|ICO|MOD)_[A-Z0-9_]+$`),
	Requirement: regexp.MustCompile(`^RF-\d{3}$`),
	Rule:        regexp.MustCompile(`^RN-\d{3}$`),
	Flow:        regexp.MustCompile(`^UC-\d{3}-.+`),
	Message:     regexp.MustCompile(`^MSG-[A-Z0-9-]+$`),
}

// MatchID reports whether id satisfies the pattern required for this type
func (t Type) MatchID(id string) bool {
	pat, ok := idPatterns[t]
	if !ok {
		return false
	}
	return pat.MatchString(id)
}

// componentPrefixes mirrors the component ID pattern for prefix classification
var componentPrefixes = []string{
	"INP_", "BTN_", "LBL_", "SEL_", "TAB_", "GRD_",
	"CHK_", "RAD_", "TXT_", "LNK_", "ICO_", "MOD_",
}

// TypeForID classifies a bare ID string by its prefix. Used for untyped
// reference lists (flow step refs, component validations) where the target
// kind is only implied by the ID itself.
func TypeForID(id string) (Type, bool) {
	switch {
	case strings.HasPrefix(id, "TELA_"):
		return Screen, true
	case strings.HasPrefix(id, "RF-"):
		return Requirement, true
	case strings.HasPrefix(id, "RN-"):
		return Rule, true
	case strings.HasPrefix(id, "UC-"):
		return Flow, true
	case strings.HasPrefix(id, "MSG-"):
		return Message, true
	}
	for _, p := range componentPrefixes {
		if strings.HasPrefix(id, p) {
			return Component, true
		}
	}
	return 0, false
}
