package action

import "encoding/json"

// CondKind enumerates the predicate variants a condition can take.
type CondKind int

const (
	// CondNone is both "no condition" and the permissive fallback for
	// condition objects whose shape matches no known variant. Scripts often
	// come from an AI planner; an unrecognized key degrades to
	// "unconditional" rather than failing the step.
	CondNone CondKind = iota
	CondExists
	CondNotExists
	CondVisible
	CondHidden
	CondTextMatches
	CondURLMatches
	CondCustom
)

// Condition gates an action or group. Exactly one variant is populated,
// selected by Kind; the evaluator switches over Kind exhaustively.
type Condition struct {
	Kind     CondKind
	Selector string // element variants and text-match
	Pattern  string // regexp for text-match and url-match
	Script   string // custom script expression
}

type condJSON struct {
	IfExists      string `json:"ifExists,omitempty"`
	IfNotExists   string `json:"ifNotExists,omitempty"`
	IfVisible     string `json:"ifVisible,omitempty"`
	IfHidden      string `json:"ifHidden,omitempty"`
	IfTextMatches *struct {
		Selector string `json:"selector"`
		Pattern  string `json:"pattern"`
	} `json:"ifTextMatches,omitempty"`
	IfURLMatches string `json:"ifUrlMatches,omitempty"`
	IfCustom     string `json:"ifCustom,omitempty"`
}

// UnmarshalJSON folds the keyed wire shape into the variant enum. Variant
// precedence follows declaration order when more than one key is present.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var raw condJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.IfExists != "":
		*c = Condition{Kind: CondExists, Selector: raw.IfExists}
	case raw.IfNotExists != "":
		*c = Condition{Kind: CondNotExists, Selector: raw.IfNotExists}
	case raw.IfVisible != "":
		*c = Condition{Kind: CondVisible, Selector: raw.IfVisible}
	case raw.IfHidden != "":
		*c = Condition{Kind: CondHidden, Selector: raw.IfHidden}
	case raw.IfTextMatches != nil:
		*c = Condition{Kind: CondTextMatches, Selector: raw.IfTextMatches.Selector, Pattern: raw.IfTextMatches.Pattern}
	case raw.IfURLMatches != "":
		*c = Condition{Kind: CondURLMatches, Pattern: raw.IfURLMatches}
	case raw.IfCustom != "":
		*c = Condition{Kind: CondCustom, Script: raw.IfCustom}
	default:
		*c = Condition{Kind: CondNone}
	}
	return nil
}

// MarshalJSON restores the keyed wire shape.
func (c Condition) MarshalJSON() ([]byte, error) {
	var raw condJSON
	switch c.Kind {
	case CondExists:
		raw.IfExists = c.Selector
	case CondNotExists:
		raw.IfNotExists = c.Selector
	case CondVisible:
		raw.IfVisible = c.Selector
	case CondHidden:
		raw.IfHidden = c.Selector
	case CondTextMatches:
		raw.IfTextMatches = &struct {
			Selector string `json:"selector"`
			Pattern  string `json:"pattern"`
		}{Selector: c.Selector, Pattern: c.Pattern}
	case CondURLMatches:
		raw.IfURLMatches = c.Pattern
	case CondCustom:
		raw.IfCustom = c.Script
	}
	return json.Marshal(raw)
}
