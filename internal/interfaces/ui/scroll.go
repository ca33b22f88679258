package ui

import (
	"context"
	"strings"
)

const AnchorLinkSelector = `a[href^="#"]`

// SmoothScroll scrolls in-page anchor links instead of jumping.
type SmoothScroll struct {
	NopBinding
	doc Document
}

func NewSmoothScroll(doc Document) *SmoothScroll {
	return &SmoothScroll{doc: doc}
}

func (s *SmoothScroll) OnClick(_ context.Context, ev Event) Outcome {
	href := ev.Href
	if href == "#" || !strings.HasPrefix(href, "#") {
		return Outcome{}
	}
	if !s.doc.Exists(href) {
		return Outcome{}
	}
	return Outcome{
		PreventDefault: true,
		Done: []Change{
			{Kind: ChangeScrollIntoView, Target: href, Name: "behavior", Value: "smooth"},
		},
	}
}
