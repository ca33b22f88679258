package money

import "strings"

const (
	KeywordAmount                             = "amount"
	KeywordAmountNoDecimals                   = "amount_no_decimals"
	KeywordAmountWithCommaSeparator           = "amount_with_comma_separator"
	KeywordAmountNoDecimalsWithCommaSeparator = "amount_no_decimals_with_comma_separator"
	KeywordAmountNoDecimalsWithSpaceSeparator = "amount_no_decimals_with_space_separator"
	KeywordAmountWithApostropheSeparator      = "amount_with_apostrophe_separator"
)

// style is the rendering rule selected by a placeholder keyword.
type style struct {
	places    int32
	thousands string
	decimal   string
}

var styles = map[string]style{
	KeywordAmount:                             {places: 2, thousands: ",", decimal: "."},
	KeywordAmountNoDecimals:                   {places: 0, thousands: ",", decimal: "."},
	KeywordAmountWithCommaSeparator:           {places: 2, thousands: ".", decimal: ","},
	KeywordAmountNoDecimalsWithCommaSeparator: {places: 0, thousands: ".", decimal: ","},
	KeywordAmountNoDecimalsWithSpaceSeparator: {places: 0, thousands: " ", decimal: "."},
	KeywordAmountWithApostropheSeparator:      {places: 2, thousands: "'", decimal: "."},
}

// Keywords lists the recognized placeholder keywords.
func Keywords() []string {
	return []string{
		KeywordAmount,
		KeywordAmountNoDecimals,
		KeywordAmountWithCommaSeparator,
		KeywordAmountNoDecimalsWithCommaSeparator,
		KeywordAmountNoDecimalsWithSpaceSeparator,
		KeywordAmountWithApostropheSeparator,
	}
}

func (s style) render(a Amount) string {
	if !a.numeric {
		return "0"
	}

	fixed := a.Major().StringFixed(s.places)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	out := sign + group(whole, s.thousands)
	if frac != "" {
		out += s.decimal + frac
	}
	return out
}

// group inserts sep between every three digits counted from the right.
func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
