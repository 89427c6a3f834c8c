package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/dennoAiden/swiper-venture/internal/content"
	"github.com/dennoAiden/swiper-venture/internal/scroll"
)

func Hero(hero content.Hero, cards []content.StatCard) g.Node {
	return Section(
		ID(scroll.SectionHome),
		Class("relative min-h-screen flex items-center overflow-hidden"),

		Div(
			Class("absolute inset-0 bg-cover bg-center"),
			g.Attr("style", "background-image: url('"+hero.BackgroundURL+"')"),
			Div(Class("absolute inset-0 bg-black/70")),
		),

		Div(
			Class("relative z-10 w-full"),
			Div(
				Class("container mx-auto px-4 sm:px-6 lg:px-10 py-16 lg:py-24 grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),

				Div(
					Class("text-center lg:text-left space-y-6"),
					Span(
						Class("inline-block bg-yellow-500/20 text-yellow-300 px-4 py-2 rounded-full text-xs sm:text-sm border border-yellow-500/30"),
						g.Text(hero.Badge),
					),
					H1(
						Class("text-3xl sm:text-4xl md:text-5xl lg:text-6xl xl:text-7xl font-extrabold text-white leading-tight"),
						g.Text(hero.Headline+" "),
						Span(Class("text-yellow-400"), g.Text(hero.HeadlineAccent)),
						Br(Class("hidden md:block")),
						g.Text(" "+hero.HeadlineTrailer),
					),
					P(
						Class("text-gray-300 text-sm sm:text-base md:text-lg max-w-xl mx-auto lg:mx-0"),
						g.Text(hero.Description),
					),
					Div(
						Class("flex flex-col sm:flex-row gap-4 justify-center lg:justify-start"),
						g.Group(g.Map(hero.CTAs, heroButton)),
					),
				),

				StatCardList(cards),
			),
		),

		Div(Class("absolute bottom-0 left-0 right-0 h-20 bg-gradient-to-t from-white to-transparent")),
	)
}

func heroButton(cta content.CTA) g.Node {
	if cta.Primary {
		return ScrollButton(cta.Target,
			"group bg-yellow-500 text-gray-900 px-6 py-3 rounded-lg font-semibold text-base sm:text-lg shadow-lg hover:bg-yellow-400 transition-all flex items-center justify-center gap-2",
			g.Text(cta.Label),
			Icon("lucide:arrow-right", "size-5 group-hover:translate-x-1 transition-transform", ""),
		)
	}
	return ScrollButton(cta.Target,
		"bg-white/10 text-white border border-white/20 px-6 py-3 rounded-lg font-semibold text-base sm:text-lg backdrop-blur-md hover:bg-white/20 transition-all",
		g.Text(cta.Label),
	)
}
