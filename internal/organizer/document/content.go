package document

import "encoding/json"

// Content is the semi-structured body of a scraped page. Text and Headings
// are the only fields the organizer tokenizes; every other key found in the
// payload's content object is carried verbatim in Extra so that callers get
// back exactly what the scraper stored.
type Content struct {
	Text     string
	Headings []Heading
	Extra    map[string]any
}

// Heading is a single page heading. Unknown keys on the heading object are
// kept in Attrs but are not indexed.
type Heading struct {
	Text  string
	Attrs map[string]any
}

// UnmarshalJSON accepts any JSON value. A non-object content, a non-string
// "text", and a malformed "headings" list all degrade to zero values instead
// of failing the decode.
func (c *Content) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = Content{}
		return nil
	}
	if v, ok := raw["text"]; ok {
		var text string
		if err := json.Unmarshal(v, &text); err == nil {
			c.Text = text
			delete(raw, "text")
		}
	}
	if v, ok := raw["headings"]; ok {
		var headings []Heading
		if err := json.Unmarshal(v, &headings); err == nil {
			c.Headings = headings
			delete(raw, "headings")
		}
	}
	if len(raw) > 0 {
		c.Extra = make(map[string]any, len(raw))
		for key, v := range raw {
			var value any
			if err := json.Unmarshal(v, &value); err != nil {
				return err
			}
			c.Extra[key] = value
		}
	}
	return nil
}

// MarshalJSON reassembles the original content object, extension fields
// included.
func (c Content) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+2)
	for key, value := range c.Extra {
		out[key] = value
	}
	if c.Text != "" {
		out["text"] = c.Text
	}
	if c.Headings != nil {
		out["headings"] = c.Headings
	}
	return json.Marshal(out)
}

func (h *Heading) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if text, ok := raw["text"].(string); ok {
		h.Text = text
		delete(raw, "text")
	}
	if len(raw) > 0 {
		h.Attrs = raw
	}
	return nil
}

func (h Heading) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(h.Attrs)+1)
	for key, value := range h.Attrs {
		out[key] = value
	}
	out["text"] = h.Text
	return json.Marshal(out)
}

// Clone returns a deep copy. Version records and outgoing snapshots must not
// share mutable state with the caller's payload or with each other.
func (c Content) Clone() Content {
	cp := Content{Text: c.Text}
	if c.Headings != nil {
		cp.Headings = make([]Heading, len(c.Headings))
		for i, h := range c.Headings {
			cp.Headings[i] = Heading{Text: h.Text}
			if h.Attrs != nil {
				cp.Headings[i].Attrs = cloneMap(h.Attrs)
			}
		}
	}
	if c.Extra != nil {
		cp.Extra = cloneMap(c.Extra)
	}
	return cp
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}
