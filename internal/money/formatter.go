// Package money renders minor-unit amounts through storefront money format
// templates such as "${{amount}}" or "{{ amount_with_comma_separator }} €".
package money

import (
	"regexp"
)

// DefaultTemplate is the storefront's stock money format.
const DefaultTemplate = "${{amount}}"

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Formatter substitutes formatted amounts into money format templates.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	defaultTemplate string
}

// NewFormatter returns a Formatter that falls back to defaultTemplate when a
// call passes an empty template.
func NewFormatter(defaultTemplate string) *Formatter {
	return &Formatter{defaultTemplate: defaultTemplate}
}

// DefaultTemplate returns the template used when none is given.
func (f *Formatter) DefaultTemplate() string {
	return f.defaultTemplate
}

// Format replaces the first placeholder of template with amount rendered in
// the style its keyword selects. Text around the placeholder is kept as is.
// A keyword outside Keywords renders as an empty string.
func (f *Formatter) Format(amount Amount, template string) (string, error) {
	template = f.resolve(template)

	loc := placeholderPattern.FindStringSubmatchIndex(template)
	if loc == nil {
		return "", &FormatError{Template: template, Err: ErrNoPlaceholder}
	}

	var value string
	if s, ok := styles[template[loc[2]:loc[3]]]; ok {
		value = s.render(amount)
	}

	return template[:loc[0]] + value + template[loc[1]:], nil
}

func (f *Formatter) FormatCents(cents int64, template string) (string, error) {
	return f.Format(Cents(cents), template)
}

func (f *Formatter) FormatFloat(cents float64, template string) (string, error) {
	return f.Format(FromFloat(cents), template)
}

func (f *Formatter) FormatString(cents string, template string) (string, error) {
	return f.Format(ParseAmount(cents), template)
}

// Validate reports ErrNoPlaceholder or ErrUnknownKeyword for templates that
// would not render an amount.
func (f *Formatter) Validate(template string) error {
	template = f.resolve(template)

	m := placeholderPattern.FindStringSubmatch(template)
	if m == nil {
		return &FormatError{Template: template, Err: ErrNoPlaceholder}
	}
	if _, ok := styles[m[1]]; !ok {
		return &FormatError{Template: template, Keyword: m[1], Err: ErrUnknownKeyword}
	}
	return nil
}

func (f *Formatter) resolve(template string) string {
	if template == "" {
		return f.defaultTemplate
	}
	return template
}
