package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders an iconify glyph; an empty ariaLabel hides it from screen readers.
func Icon(name, classes, ariaLabel string) g.Node {
	cls := "iconify inline-block"
	if classes != "" {
		cls += " " + classes
	}

	if ariaLabel != "" {
		return Span(
			Class(cls),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(cls),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// ScrollButton is a button that asks the page script to scroll to target.
func ScrollButton(target, class string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Class(class),
		g.Attr("data-scroll-target", target),
		g.Group(children),
	)
}

func Logo(siteName string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Icon("lucide:hard-hat", "size-6 text-yellow-400", ""),
		Span(Class("font-bold text-xl text-white"), g.Text(siteName)),
	)
}
