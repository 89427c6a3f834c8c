package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gocolly/colly/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dennoAiden/swiper-venture/internal/content"
	"github.com/dennoAiden/swiper-venture/internal/scroll"
)

func newAnchorsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "Check scroll targets and stat cards in the served HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), v.GetDuration("timeout"))
			defer cancel()

			client := resty.New().SetTimeout(v.GetDuration("timeout"))
			report, err := CheckAnchors(ctx, client, v.GetString("url"))
			if err != nil {
				return err
			}
			if err := report.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			return report.Err()
		},
	}
}

// pageScan is what one crawl of the landing page collects.
type pageScan struct {
	doc      *scroll.Document
	controls []scroll.Tagged
	lists    int
	cards    []statCard
}

type statCard struct {
	key   string
	value string
	label string
}

// CheckAnchors checks the site's /health with client, then crawls pageURL and
// verifies its scroll controls and stat cards.
func CheckAnchors(ctx context.Context, client *resty.Client, pageURL string) (*Report, error) {
	report := &Report{}
	checkHealth(ctx, report, client, pageURL)

	scan, err := scanPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	checkSections(report, scan.doc)
	checkScrollTargets(report, scan)
	checkStatCards(report, scan)
	return report, nil
}

func checkHealth(ctx context.Context, report *Report, client *resty.Client, pageURL string) {
	const name = "website health"

	u, err := url.Parse(pageURL)
	if err != nil {
		report.failf(name, "%v", err)
		return
	}
	healthURL := u.ResolveReference(&url.URL{Path: "/health"}).String()

	resp, err := client.R().SetContext(ctx).Get(healthURL)
	switch {
	case err != nil:
		report.failf(name, "%v", err)
	case resp.StatusCode() != http.StatusOK:
		report.failf(name, "GET /health: %s", resp.Status())
	default:
		report.pass(name)
	}
}

func scanPage(ctx context.Context, pageURL string) (*pageScan, error) {
	c := colly.NewCollector(
		colly.UserAgent("scrollcheck/1.0"),
		colly.StdlibContext(ctx),
	)

	scan := &pageScan{}
	var parseErr, fetchErr error

	c.OnResponse(func(r *colly.Response) {
		scan.doc, parseErr = scroll.ParseDocument(bytes.NewReader(r.Body))
	})

	c.OnHTML("[data-scroll-target]", func(e *colly.HTMLElement) {
		scan.controls = append(scan.controls, scroll.Tagged{
			Tag:   e.Name,
			Value: e.Attr("data-scroll-target"),
			Text:  collapse(e.Text),
		})
	})

	c.OnHTML("[data-stat-cards]", func(e *colly.HTMLElement) {
		scan.lists++
	})

	c.OnHTML("[data-stat-card]", func(e *colly.HTMLElement) {
		scan.cards = append(scan.cards, statCard{
			key:   e.Attr("data-stat-card"),
			value: collapse(e.ChildText("[data-stat-value]")),
			label: collapse(e.ChildText("[data-stat-label]")),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = fmt.Errorf("fetch %s: HTTP %d: %w", pageURL, r.StatusCode, err)
			return
		}
		fetchErr = fmt.Errorf("fetch %s: %w", pageURL, err)
	})

	if err := c.Visit(pageURL); err != nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if parseErr != nil {
		return nil, parseErr
	}
	if scan.doc == nil {
		return nil, fmt.Errorf("fetch %s: no response", pageURL)
	}
	return scan, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func checkSections(report *Report, doc *scroll.Document) {
	for _, id := range []string{scroll.SectionHome, scroll.SectionProjects, scroll.SectionContact} {
		name := "section #" + id
		if _, ok := doc.FindByID(id); ok {
			report.pass(name)
		} else {
			report.failf(name, "no element with id %q", id)
		}
	}
}

func checkScrollTargets(report *Report, scan *pageScan) {
	if len(scan.controls) == 0 {
		report.failf("scroll controls", "none found")
		return
	}

	for _, c := range scan.controls {
		name := fmt.Sprintf("%q -> #%s", c.Text, c.Value)
		if _, ok := scan.doc.FindByID(c.Value); ok {
			report.pass(name)
		} else {
			report.failf(name, "target does not exist")
		}
	}

	for _, cta := range content.HeroCopy().CTAs {
		found := slices.ContainsFunc(scan.controls, func(t scroll.Tagged) bool {
			return t.Value == cta.Target && t.Text == cta.Label
		})
		name := "cta " + cta.Label
		if found {
			report.pass(name)
		} else {
			report.failf(name, "no control scrolling to #%s", cta.Target)
		}
	}
}

func checkStatCards(report *Report, scan *pageScan) {
	if scan.lists != 1 {
		report.failf("stat card list", "found %d lists, want 1", scan.lists)
	} else {
		report.pass("stat card list")
	}

	want := content.StatCards()
	if len(scan.cards) != len(want) {
		report.failf("stat cards", "found %d cards, want %d", len(scan.cards), len(want))
		return
	}

	for i, w := range want {
		card := scan.cards[i]
		name := fmt.Sprintf("stat card %d", i+1)
		got := card.value + " " + card.label
		if card.key != w.Label || card.value != w.Value || card.label != w.Label {
			report.failf(name, "got %q, want %q", got, w.Value+" "+w.Label)
			continue
		}
		report.add(name, true, got)
	}
}
