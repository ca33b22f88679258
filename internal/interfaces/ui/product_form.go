package ui

import (
	"context"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
)

const (
	ProductFormSelector = `form[data-type="add-to-cart-form"]`

	submitButtonSelector   = `[type="submit"]`
	submitLabelSelector    = `[type="submit"] span`
	loadingSpinnerSelector = ".loading-overlay__spinner"
)

type CartAdder interface {
	AddToCart(ctx context.Context, cmd services.AddToCartCommand) (*services.AddToCartResult, error)
}

// ProductFormBinding submits add-to-cart forms and keeps the cart badge current.
type ProductFormBinding struct {
	NopBinding
	cart  CartAdder
	badge application.CountSink
}

func NewProductFormBinding(cart CartAdder, badge application.CountSink) *ProductFormBinding {
	return &ProductFormBinding{cart: cart, badge: badge}
}

func (b *ProductFormBinding) OnSubmit(ctx context.Context, ev Event) Outcome {
	out := Outcome{
		PreventDefault: true,
		Pending: []Change{
			{Kind: ChangeSetAttr, Target: submitButtonSelector, Name: "disabled", Value: "disabled"},
			{Kind: ChangeSetStyle, Target: submitLabelSelector, Name: "opacity", Value: "0"},
			{Kind: ChangeRemoveClass, Target: loadingSpinnerSelector, Name: "hidden"},
		},
	}

	result, err := b.cart.AddToCart(ctx, services.AddToCartCommand{
		VariantID: ev.Form.Get("id"),
		Quantity:  ev.Form.Get("quantity"),
	})
	if result != nil {
		n := result.Notification
		out.Notification = &n
	}

	if err == nil {
		if result != nil && result.CountKnown && b.badge != nil {
			b.badge.SetCount(result.ItemCount)
		}
		out.Done = append(out.Done, Change{Kind: ChangeResetForm, Target: ev.CurrentTarget})
	}

	out.Done = append(out.Done,
		Change{Kind: ChangeRemoveAttr, Target: submitButtonSelector, Name: "disabled"},
		Change{Kind: ChangeSetStyle, Target: submitLabelSelector, Name: "opacity", Value: "1"},
		Change{Kind: ChangeAddClass, Target: loadingSpinnerSelector, Name: "hidden"},
	)
	return out
}
