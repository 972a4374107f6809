package browser

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the analyzed structure of the current page, fed to the AI
// planner so it can target real selectors.
type Snapshot struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Elements []Element `json:"elements"`
}

// Element describes one interactive element on the page.
type Element struct {
	Selector    string `json:"selector"`
	Role        string `json:"role"` // button, input, link, select
	Text        string `json:"text,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// extractJS walks the visible interactive elements and builds a stable CSS
// selector for each: id, then name, then tag plus classes when unique, then
// an nth-child path.
const extractJS = `() => {
	const cssSafe = s => s && !/^[0-9]/.test(s) && !/[.:#\[\]()>~+*\/\\]/.test(s);
	const selectorFor = el => {
		if (cssSafe(el.id)) return '#' + el.id;
		if (el.name) return '[name="' + el.name + '"]';
		const tag = el.tagName.toLowerCase();
		if (typeof el.className === 'string') {
			const classes = el.className.trim().split(/\s+/).filter(cssSafe).slice(0, 2);
			if (classes.length) {
				const sel = tag + '.' + classes.join('.');
				try { if (document.querySelectorAll(sel).length === 1) return sel; } catch (e) {}
			}
		}
		const parent = el.parentElement;
		if (!parent) return tag;
		const idx = Array.from(parent.children).indexOf(el) + 1;
		return selectorFor(parent) + ' > ' + tag + ':nth-child(' + idx + ')';
	};
	const roleFor = el => {
		const tag = el.tagName.toLowerCase();
		if (tag === 'select') return 'select';
		if (tag === 'a') return 'link';
		if (tag === 'input' || tag === 'textarea') return 'input';
		return 'button';
	};
	const out = [];
	const seen = new Set();
	const query = 'button, [role="button"], input:not([type="hidden"]), textarea, select, a[href]';
	document.querySelectorAll(query).forEach(el => {
		if (!el.offsetParent) return;
		const href = el.getAttribute && el.getAttribute('href');
		if (href && (href.startsWith('#') || href.startsWith('javascript:'))) return;
		const selector = selectorFor(el);
		if (seen.has(selector)) return;
		seen.add(selector);
		out.push({
			selector: selector,
			role: roleFor(el),
			text: (el.textContent || el.value || '').trim().slice(0, 50),
			placeholder: el.placeholder || undefined,
		});
	});
	return out;
}`

// Snapshot extracts the current URL, title, and interactive elements.
func (s *Session) Snapshot() (*Snapshot, error) {
	info, err := s.page.Info()
	if err != nil {
		return nil, fmt.Errorf("page info: %w", err)
	}

	obj, err := s.page.Eval(extractJS)
	if err != nil {
		return nil, fmt.Errorf("extract elements: %w", err)
	}
	raw, err := json.Marshal(obj.Value)
	if err != nil {
		return nil, fmt.Errorf("extract elements: %w", err)
	}
	var elements []Element
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("extract elements: %w", err)
	}

	return &Snapshot{
		URL:      info.URL,
		Title:    info.Title,
		Elements: elements,
	}, nil
}
