// Package content holds the landing page's static copy and card data.
package content

import "github.com/dennoAiden/swiper-venture/internal/scroll"

// StatCard is one headline statistic shown in the hero.
type StatCard struct {
	Icon  string
	Value string
	Label string
}

var statCards = [...]StatCard{
	{Icon: "lucide:award", Value: "50+", Label: "Projects"},
	{Icon: "lucide:users", Value: "100+", Label: "Clients"},
	{Icon: "lucide:building-2", Value: "15+", Label: "Years Experience"},
	{Icon: "lucide:arrow-right", Value: "Nationwide", Label: "Coverage"},
}

// StatCards returns the hero statistics in display order.
// Callers get their own copy.
func StatCards() []StatCard {
	out := make([]StatCard, len(statCards))
	copy(out, statCards[:])
	return out
}

// CTA is a hero button that scrolls to a section.
type CTA struct {
	Label   string
	Target  string
	Primary bool
}

// Hero is the copy for the hero section.
type Hero struct {
	Badge           string
	Headline        string
	HeadlineAccent  string
	HeadlineTrailer string
	Description     string
	BackgroundURL   string
	CTAs            []CTA
}

func HeroCopy() Hero {
	return Hero{
		Badge:           "✔ NCA Registered Contractor",
		Headline:        "Transforming Kenya’s",
		HeadlineAccent:  "Infrastructure",
		HeadlineTrailer: "With Excellence",
		Description:     "High-quality construction, engineering, and civil works, delivering innovation and reliability across Kenya.",
		BackgroundURL:   "https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg?auto=compress&cs=tinysrgb&w=1920",
		CTAs: []CTA{
			{Label: "Request a Quote", Target: scroll.SectionContact, Primary: true},
			{Label: "View Portfolio", Target: scroll.SectionProjects},
		},
	}
}

// NavLink is a top bar entry.
type NavLink struct {
	Label  string
	Target string
}

func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Home", Target: scroll.SectionHome},
		{Label: "Projects", Target: scroll.SectionProjects},
		{Label: "Contact", Target: scroll.SectionContact},
	}
}

// Project is a portfolio entry.
type Project struct {
	Title    string
	Category string
	Location string
	ImageURL string
}

func Projects() []Project {
	return []Project{
		{
			Title:    "Thika Road Interchange",
			Category: "Civil Works",
			Location: "Nairobi",
			ImageURL: "https://images.pexels.com/photos/2219024/pexels-photo-2219024.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			Title:    "Riverside Commercial Plaza",
			Category: "Construction",
			Location: "Mombasa",
			ImageURL: "https://images.pexels.com/photos/159306/construction-site-build-construction-work-159306.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			Title:    "Rift Valley Water Project",
			Category: "Engineering",
			Location: "Nakuru",
			ImageURL: "https://images.pexels.com/photos/1105766/pexels-photo-1105766.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
	}
}
