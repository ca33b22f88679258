package ui

import (
	"context"
	"net/url"

	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
)

const (
	NewsletterSelector = ".footer__newsletter-form"

	newsletterButtonSelector = `button[type="submit"]`
	subscribingLabel         = "Subscribing..."
)

type Subscriber interface {
	Subscribe(ctx context.Context, cmd services.SubscribeCommand) (*services.SubscribeResult, error)
}

type NewsletterBinding struct {
	NopBinding
	newsletter Subscriber
}

func NewNewsletterBinding(newsletter Subscriber) *NewsletterBinding {
	return &NewsletterBinding{newsletter: newsletter}
}

func (b *NewsletterBinding) OnSubmit(ctx context.Context, ev Event) Outcome {
	email := ev.Form.Get("email")
	if email == "" {
		return Outcome{PreventDefault: true}
	}

	fields := url.Values{}
	for k, vs := range ev.Form {
		if k != "email" {
			fields[k] = vs
		}
	}

	out := Outcome{
		PreventDefault: true,
		Pending: []Change{
			{Kind: ChangeSetText, Target: newsletterButtonSelector, Value: subscribingLabel},
			{Kind: ChangeSetAttr, Target: newsletterButtonSelector, Name: "disabled", Value: "disabled"},
		},
	}

	result, err := b.newsletter.Subscribe(ctx, services.SubscribeCommand{
		Action: ev.Action,
		Email:  email,
		Fields: fields,
	})
	if result != nil {
		out.Notification = result.Notification
	}
	if err == nil {
		out.Done = append(out.Done, Change{Kind: ChangeResetForm, Target: ev.CurrentTarget})
	}

	out.Done = append(out.Done,
		Change{Kind: ChangeRestoreText, Target: newsletterButtonSelector},
		Change{Kind: ChangeRemoveAttr, Target: newsletterButtonSelector, Name: "disabled"},
	)
	return out
}
