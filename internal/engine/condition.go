package engine

import (
	"regexp"
	"time"

	"github.com/v0xg/stepwise/internal/action"
)

// textMatchTimeout bounds the element lookup inside a text-match condition.
// Deliberately short: a condition probe should not stall the run the way a
// full action lookup may.
const textMatchTimeout = 2 * time.Second

// evaluate decides whether a gated action or group should run. A nil
// condition passes. Driver errors during a probe never surface as failures:
// an erroring check evaluates to false, so a broken condition can only cause
// a skip. Unrecognized condition shapes pass, same as no condition.
func (e *Engine) evaluate(c *action.Condition) bool {
	if c == nil {
		return true
	}
	switch c.Kind {
	case action.CondExists:
		return e.exists(c.Selector)
	case action.CondNotExists:
		return !e.exists(c.Selector)
	case action.CondVisible:
		return e.visible(c.Selector)
	case action.CondHidden:
		return !e.visible(c.Selector)
	case action.CondTextMatches:
		el, err := e.driver.Locate(c.Selector, textMatchTimeout)
		if err != nil {
			return false
		}
		text, err := el.Text()
		if err != nil {
			return false
		}
		return matches(c.Pattern, text)
	case action.CondURLMatches:
		url, err := e.driver.CurrentURL()
		if err != nil {
			return false
		}
		return matches(c.Pattern, url)
	case action.CondCustom:
		res, err := e.driver.RunScript(c.Script)
		if err != nil {
			return false
		}
		return res.Truthy
	default:
		return true
	}
}

func (e *Engine) exists(selector string) bool {
	ok, err := e.driver.Exists(selector)
	return err == nil && ok
}

func (e *Engine) visible(selector string) bool {
	ok, err := e.driver.Visible(selector)
	return err == nil && ok
}

// matches runs an unanchored regexp search; an invalid pattern never matches.
func matches(pattern, text string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
