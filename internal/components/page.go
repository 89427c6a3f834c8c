package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"

	"github.com/dennoAiden/swiper-venture/internal/content"
)

// Site carries the per-deployment values the landing page needs.
type Site struct {
	Name       string
	APIBaseURL string
	Now        func() time.Time
}

// LandingPage assembles the full document: top bar, hero with stat cards,
// portfolio, contact form and footer.
func LandingPage(site Site) g.Node {
	now := time.Now
	if site.Now != nil {
		now = site.Now
	}
	hero := content.HeroCopy()

	return Layout(
		PageConfig{
			Title:       site.Name + " - Construction & Engineering",
			Description: hero.Description,
			OGImage:     hero.BackgroundURL,
		},
		Topbar(site.Name, content.NavLinks()),
		Hero(hero, content.StatCards()),
		ProjectsSection(content.Projects()),
		ContactSection(site.APIBaseURL+"/api/contact"),
		PageFooter(site.Name, strconv.Itoa(now().Year())),
	)
}
