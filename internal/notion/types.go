package notion

import (
	"encoding/json"
	"time"
)

// Page is the store's unit of storage: a property bag plus metadata.
type Page struct {
	ID             string     `json:"id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	Archived       bool       `json:"archived"`
	Properties     Properties `json:"properties"`
}

// Properties maps property names to typed values.
type Properties map[string]Property

// Property is one typed property value. Exactly one of the value
// fields is populated. ClearDate/ClearURL mark an explicit null on
// write, which the store treats as "remove the value".
type Property struct {
	Title    []RichText   `json:"title,omitempty"`
	RichText []RichText   `json:"rich_text,omitempty"`
	Checkbox *bool        `json:"checkbox,omitempty"`
	Date     *DateValue   `json:"date,omitempty"`
	Select   *SelectValue `json:"select,omitempty"`
	Email    *string      `json:"email,omitempty"`
	URL      *string      `json:"url,omitempty"`

	ClearDate bool `json:"-"`
	ClearURL  bool `json:"-"`
}

// RichText is a fragment of text content. Reads may carry only
// plain_text depending on the store's serializer.
type RichText struct {
	Type      string `json:"type,omitempty"`
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

// Text is the writable payload of a rich text fragment.
type Text struct {
	Content string `json:"content"`
}

// DateValue is a civil date range; only Start is used here.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// SelectValue is a named select option.
type SelectValue struct {
	Name string `json:"name"`
}

// MarshalJSON emits an explicit null for cleared date/url values so
// the store removes them instead of ignoring the field.
func (p Property) MarshalJSON() ([]byte, error) {
	if p.ClearDate {
		return []byte(`{"date":null}`), nil
	}
	if p.ClearURL {
		return []byte(`{"url":null}`), nil
	}
	type plain Property
	return json.Marshal(plain(p))
}

// NewTitle builds a title property from a plain string.
func NewTitle(content string) Property {
	return Property{Title: []RichText{{Type: "text", Text: &Text{Content: content}}}}
}

// NewRichText builds a rich_text property from a plain string.
func NewRichText(content string) Property {
	return Property{RichText: []RichText{{Type: "text", Text: &Text{Content: content}}}}
}

// NewCheckbox builds a checkbox property.
func NewCheckbox(checked bool) Property {
	return Property{Checkbox: &checked}
}

// NewDate builds a date property from an ISO YYYY-MM-DD string.
func NewDate(start string) Property {
	return Property{Date: &DateValue{Start: start}}
}

// NullDate builds a property that clears a date on write.
func NullDate() Property {
	return Property{ClearDate: true}
}

// NewSelect builds a select property.
func NewSelect(name string) Property {
	return Property{Select: &SelectValue{Name: name}}
}

// NewEmail builds an email property.
func NewEmail(address string) Property {
	return Property{Email: &address}
}

// NewURL builds a url property; an empty value clears it.
func NewURL(url string) Property {
	if url == "" {
		return Property{ClearURL: true}
	}
	return Property{URL: &url}
}

// The accessors below never fail: a missing or malformed property
// degrades to the type's zero value, so one bad record can't poison a
// whole listing.

func (ps Properties) TitleText(name string) string {
	return richTextContent(ps[name].Title)
}

func (ps Properties) RichTextContent(name string) string {
	return richTextContent(ps[name].RichText)
}

func (ps Properties) CheckboxValue(name string) bool {
	if p, ok := ps[name]; ok && p.Checkbox != nil {
		return *p.Checkbox
	}
	return false
}

func (ps Properties) DateStart(name string) string {
	if p, ok := ps[name]; ok && p.Date != nil {
		return p.Date.Start
	}
	return ""
}

func (ps Properties) SelectName(name string) string {
	if p, ok := ps[name]; ok && p.Select != nil {
		return p.Select.Name
	}
	return ""
}

func (ps Properties) EmailValue(name string) string {
	if p, ok := ps[name]; ok && p.Email != nil {
		return *p.Email
	}
	return ""
}

func (ps Properties) URLValue(name string) string {
	if p, ok := ps[name]; ok && p.URL != nil {
		return *p.URL
	}
	return ""
}

func richTextContent(fragments []RichText) string {
	if len(fragments) == 0 {
		return ""
	}
	first := fragments[0]
	if first.Text != nil {
		return first.Text.Content
	}
	return first.PlainText
}
