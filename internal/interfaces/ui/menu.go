package ui

import (
	"context"
	"sync"
)

const (
	MenuToggleSelector = ".header__menu-toggle"
	MobileMenuSelector = ".header__mobile-menu"
	MenuCloseSelector  = ".header__mobile-menu-close"

	bodySelector = "body"
)

// MobileMenu opens the header drawer and locks page scroll while it is open.
type MobileMenu struct {
	NopBinding
	mu   sync.Mutex
	open bool
}

func NewMobileMenu() *MobileMenu {
	return &MobileMenu{}
}

// Register binds only the controls present on the page.
func (m *MobileMenu) Register(reg *Registry, doc Document) {
	hasMenu := doc.Exists(MobileMenuSelector)
	if !hasMenu {
		return
	}
	if doc.Exists(MenuToggleSelector) {
		reg.Register(MenuToggleSelector, m)
	}
	if doc.Exists(MenuCloseSelector) {
		reg.Register(MenuCloseSelector, m)
	}
	reg.Register(MobileMenuSelector, m)
}

func (m *MobileMenu) OnClick(_ context.Context, ev Event) Outcome {
	switch ev.CurrentTarget {
	case MenuToggleSelector:
		return m.setOpen(true)
	case MenuCloseSelector:
		return m.setOpen(false)
	case MobileMenuSelector:
		// clicks inside the drawer's content do not close it
		if ev.Target == MobileMenuSelector {
			return m.setOpen(false)
		}
	}
	return Outcome{}
}

func (m *MobileMenu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *MobileMenu) setOpen(open bool) Outcome {
	m.mu.Lock()
	m.open = open
	m.mu.Unlock()

	if open {
		return Outcome{Done: []Change{
			{Kind: ChangeAddClass, Target: MobileMenuSelector, Name: "active"},
			{Kind: ChangeSetStyle, Target: bodySelector, Name: "overflow", Value: "hidden"},
		}}
	}
	return Outcome{Done: []Change{
		{Kind: ChangeRemoveClass, Target: MobileMenuSelector, Name: "active"},
		{Kind: ChangeSetStyle, Target: bodySelector, Name: "overflow", Value: ""},
	}}
}
