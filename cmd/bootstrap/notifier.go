package bootstrap

import (
	"pupperazi-api/internal/infra/notify"
	"pupperazi-api/internal/usecase/commands"

	"go.uber.org/fx"
)

// NotifierModule wires the SlickText and Resend clients into the fan-out
// dispatcher. Missing provider credentials degrade channels at send time
// instead of failing here.
var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			notify.NewSlickTextClient,
			fx.As(new(notify.SMSSender)),
		),
		fx.Annotate(
			notify.NewResendClient,
			fx.As(new(notify.EmailSender)),
		),
		fx.Annotate(
			notify.NewDispatcher,
			fx.As(new(commands.LeadNotifier)),
		),
	),
)
