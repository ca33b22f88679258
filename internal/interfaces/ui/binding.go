// Package ui expresses the storefront theme's page behaviors as bindings that
// turn events into outcomes. A host (browser bridge, test, server-side
// renderer) applies the outcomes to its document.
package ui

import (
	"context"
	"net/url"
	"sort"
	"sync"

	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
)

type EventType string

const (
	EventSubmit EventType = "submit"
	EventInput  EventType = "input"
	EventClick  EventType = "click"
)

// Event is a user interaction. CurrentTarget is the selector the binding was
// registered under; Target is the element that received the event.
type Event struct {
	Type          EventType
	Target        string
	CurrentTarget string
	Value         string
	Form          url.Values
	Action        string
	Href          string
}

type ChangeKind string

const (
	ChangeAddClass       ChangeKind = "add_class"
	ChangeRemoveClass    ChangeKind = "remove_class"
	ChangeSetAttr        ChangeKind = "set_attr"
	ChangeRemoveAttr     ChangeKind = "remove_attr"
	ChangeSetStyle       ChangeKind = "set_style"
	ChangeSetText        ChangeKind = "set_text"
	ChangeRestoreText    ChangeKind = "restore_text"
	ChangeResetForm      ChangeKind = "reset_form"
	ChangeScrollIntoView ChangeKind = "scroll_into_view"
)

// Change is one mutation of the element matched by Target.
type Change struct {
	Kind   ChangeKind
	Target string
	Name   string
	Value  string
}

// Outcome is a binding's answer to an event. Pending changes are shown while
// the binding works and Done changes once it has finished.
type Outcome struct {
	PreventDefault bool
	Pending        []Change
	Done           []Change
	Notification   *domain.Notification
}

// Changes returns every change in application order.
func (o Outcome) Changes() []Change {
	all := make([]Change, 0, len(o.Pending)+len(o.Done))
	all = append(all, o.Pending...)
	return append(all, o.Done...)
}

type Binding interface {
	OnSubmit(ctx context.Context, ev Event) Outcome
	OnInput(ctx context.Context, ev Event) Outcome
	OnClick(ctx context.Context, ev Event) Outcome
}

// NopBinding ignores every event. Embed it to handle only some event types.
type NopBinding struct{}

func (NopBinding) OnSubmit(context.Context, Event) Outcome { return Outcome{} }
func (NopBinding) OnInput(context.Context, Event) Outcome  { return Outcome{} }
func (NopBinding) OnClick(context.Context, Event) Outcome  { return Outcome{} }

// Document answers queries about the page a theme is bound to.
type Document interface {
	Exists(selector string) bool
}

// Registry maps selectors to the bindings listening on them.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string][]Binding
}

func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string][]Binding)}
}

func (r *Registry) Register(selector string, b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[selector] = append(r.bindings[selector], b)
}

// Dispatch delivers ev to every binding registered for selector, in
// registration order.
func (r *Registry) Dispatch(ctx context.Context, selector string, ev Event) []Outcome {
	r.mu.RLock()
	bindings := append([]Binding(nil), r.bindings[selector]...)
	r.mu.RUnlock()

	ev.CurrentTarget = selector
	if ev.Target == "" {
		ev.Target = selector
	}

	outcomes := make([]Outcome, 0, len(bindings))
	for _, b := range bindings {
		switch ev.Type {
		case EventSubmit:
			outcomes = append(outcomes, b.OnSubmit(ctx, ev))
		case EventInput:
			outcomes = append(outcomes, b.OnInput(ctx, ev))
		case EventClick:
			outcomes = append(outcomes, b.OnClick(ctx, ev))
		}
	}
	return outcomes
}

func (r *Registry) Selectors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.bindings))
	for s := range r.bindings {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
