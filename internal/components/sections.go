package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/dennoAiden/swiper-venture/internal/content"
	"github.com/dennoAiden/swiper-venture/internal/scroll"
)

func Topbar(siteName string, links []content.NavLink) g.Node {
	return Header(
		Class("fixed inset-x-0 top-0 z-50 bg-black/40 backdrop-blur-md"),
		Nav(
			Class("container mx-auto flex items-center justify-between px-4 sm:px-6 lg:px-10 py-3"),
			ScrollButton(scroll.SectionHome, "cursor-pointer", Logo(siteName)),
			Ul(
				Class("flex items-center gap-4 sm:gap-6 text-sm font-medium text-white"),
				g.Group(g.Map(links, func(l content.NavLink) g.Node {
					return Li(ScrollButton(l.Target, "hover:text-yellow-400 transition-colors", g.Text(l.Label)))
				})),
			),
		),
	)
}

func ProjectsSection(projects []content.Project) g.Node {
	return Section(
		ID(scroll.SectionProjects),
		Class("bg-white py-16 lg:py-24"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-10"),
			Div(
				Class("text-center max-w-2xl mx-auto"),
				H2(Class("text-3xl sm:text-4xl font-bold text-gray-900"), g.Text("Our Portfolio")),
				P(Class("mt-3 text-gray-600"), g.Text("A selection of completed construction, engineering, and civil works.")),
			),
			Div(
				Class("mt-12 grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Group(g.Map(projects, func(p content.Project) g.Node {
					return Article(
						Class("rounded-xl overflow-hidden border border-gray-200 shadow-sm"),
						g.Attr("data-project", p.Title),
						Img(Src(p.ImageURL), Alt(p.Title), Class("h-48 w-full object-cover"), g.Attr("loading", "lazy")),
						Div(
							Class("p-5"),
							Span(Class("text-xs font-semibold uppercase tracking-wide text-yellow-600"), g.Text(p.Category)),
							H3(Class("mt-1 text-lg font-semibold text-gray-900"), g.Text(p.Title)),
							P(Class("mt-1 text-sm text-gray-500"), Icon("lucide:map-pin", "size-4 mr-1", ""), g.Text(p.Location)),
						),
					)
				})),
			),
		),
	)
}

type contactField struct {
	Name        string
	Label       string
	Type        string
	MaxLength   int
	Placeholder string
}

var contactFields = []contactField{
	{Name: "name", Label: "Full Name", Type: "text", MaxLength: 100, Placeholder: "Jane Wanjiku"},
	{Name: "email", Label: "Email", Type: "email", MaxLength: 120, Placeholder: "jane@example.com"},
	{Name: "phone", Label: "Phone", Type: "tel", MaxLength: 20, Placeholder: "+254 700 000 000"},
	{Name: "subject", Label: "Subject", Type: "text", MaxLength: 150, Placeholder: "Project enquiry"},
}

// ContactSection renders the contact form; submitURL is the API endpoint the
// page script posts to.
func ContactSection(submitURL string) g.Node {
	return Section(
		ID(scroll.SectionContact),
		Class("bg-gray-50 py-16 lg:py-24"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-10 max-w-3xl"),
			H2(Class("text-3xl sm:text-4xl font-bold text-gray-900 text-center"), g.Text("Request a Quote")),
			P(Class("mt-3 text-gray-600 text-center"), g.Text("Tell us about your project and our team will get back to you.")),
			FormEl(
				ID("contact-form"),
				Class("mt-10 grid grid-cols-1 sm:grid-cols-2 gap-4"),
				Method("post"),
				Action(submitURL),
				g.Attr("data-contact-form"),
				g.Group(g.Map(contactFields, func(f contactField) g.Node {
					return Label(
						Class("flex flex-col gap-1 text-sm font-medium text-gray-700"),
						g.Text(f.Label),
						Input(
							Type(f.Type),
							Name(f.Name),
							Placeholder(f.Placeholder),
							g.Attr("maxlength", fmt.Sprint(f.MaxLength)),
							Required(),
							Class("rounded-lg border border-gray-300 px-3 py-2"),
						),
					)
				})),
				Label(
					Class("sm:col-span-2 flex flex-col gap-1 text-sm font-medium text-gray-700"),
					g.Text("Message"),
					Textarea(Name("message"), Rows("5"), Required(), Class("rounded-lg border border-gray-300 px-3 py-2")),
				),
				Button(
					Type("submit"),
					Class("sm:col-span-2 bg-yellow-500 text-gray-900 px-6 py-3 rounded-lg font-semibold hover:bg-yellow-400 transition-all"),
					g.Text("Send Message"),
				),
				P(Class("sm:col-span-2 text-sm"), g.Attr("data-contact-status"), g.Attr("aria-live", "polite")),
			),
		),
	)
}

func PageFooter(siteName, year string) g.Node {
	return Footer(
		Class("bg-gray-900 text-gray-400 py-8"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-10 flex flex-wrap items-center justify-between gap-3"),
			Logo(siteName),
			P(g.Text(fmt.Sprintf("© %s %s. All rights reserved.", year, siteName))),
		),
	)
}
