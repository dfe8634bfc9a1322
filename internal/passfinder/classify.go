package passfinder

import "cdvrpass/internal/channelsdvr"

// UnknownPass is reported when a program's rule ID is not among the server's
// rules.
const UnknownPass = "nothing found!"

// Kind is the reason a program is on the server.
type Kind int

const (
	KindImported Kind = iota
	KindManual
	KindPass
	KindUnknownPass
)

func (k Kind) String() string {
	switch k {
	case KindImported:
		return "imported"
	case KindManual:
		return "manual"
	case KindPass:
		return "pass"
	case KindUnknownPass:
		return "unknown pass"
	default:
		return "unknown"
	}
}

// Passes maps rule IDs to rule names.
type Passes map[string]string

// PassesFromRules indexes rules by ID. Later duplicates win.
func PassesFromRules(rules []channelsdvr.Rule) Passes {
	passes := make(Passes, len(rules))
	for _, r := range rules {
		passes[r.ID] = r.Name
	}
	return passes
}

// Classification is the outcome of Classify.
type Classification struct {
	Kind Kind
	// PassName is set for KindPass and KindUnknownPass.
	PassName string
}

// Match is a program together with its classification.
type Match struct {
	Program
	Classification
}

// Classify decides why p exists. Imports take precedence over the manual
// marker, which takes precedence over the rule ID.
func Classify(p Program, passes Passes) Classification {
	switch {
	case p.IsImported():
		return Classification{Kind: KindImported}
	case p.IsManualRecording():
		return Classification{Kind: KindManual}
	}
	name, ok := passes[p.RuleID]
	if !ok || name == "" {
		return Classification{Kind: KindUnknownPass, PassName: UnknownPass}
	}
	return Classification{Kind: KindPass, PassName: name}
}
