package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/dennoAiden/swiper-venture/internal/content"
)

// StatCardList renders one card per entry, in the given order.
func StatCardList(cards []content.StatCard) g.Node {
	return Div(
		Class("grid grid-cols-2 gap-4 sm:gap-6"),
		g.Attr("data-stat-cards"),
		g.Group(g.Map(cards, StatCard)),
	)
}

func StatCard(c content.StatCard) g.Node {
	return Div(
		Class("bg-white/10 p-5 sm:p-6 rounded-xl text-center border border-white/20 backdrop-blur-md"),
		g.Attr("data-stat-card", c.Label),
		Span(Class("iconify block mx-auto mb-2 sm:mb-3 size-8 text-yellow-300"), g.Attr("data-icon", c.Icon), g.Attr("aria-hidden", "true")),
		H3(Class("text-xl sm:text-2xl font-bold text-white"), g.Attr("data-stat-value"), g.Text(c.Value)),
		P(Class("text-gray-300 text-xs sm:text-sm"), g.Attr("data-stat-label"), g.Text(c.Label)),
	)
}
