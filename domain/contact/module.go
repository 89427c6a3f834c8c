package contact

import (
	"go.uber.org/fx"

	"github.com/dennoAiden/swiper-venture/domain/email"
)

// Module provides the contact form domain
var Module = fx.Module("contact",
	fx.Provide(
		fx.Annotate(NewRepository, fx.As(new(Store))),
		fx.Annotate(
			func(ts *email.TemplateService) *email.TemplateService { return ts },
			fx.As(new(Renderer)),
		),
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
