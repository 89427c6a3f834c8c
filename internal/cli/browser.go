package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dennoAiden/swiper-venture/internal/browser"
	"github.com/dennoAiden/swiper-venture/internal/content"
	"github.com/dennoAiden/swiper-venture/internal/scroll"
)

// missingSection never appears on the landing page.
const missingSection = "scrollcheck-missing-section"

func newBrowserCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browser",
		Short: "Scroll to every section in headless Chromium",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), v.GetDuration("timeout"))
			defer cancel()

			report, err := CheckBrowser(ctx, BrowserOptions{
				URL:        v.GetString("url"),
				ControlURL: v.GetString("control-url"),
				Headless:   !v.GetBool("show"),
				Timeout:    v.GetDuration("timeout"),
			}, newLogger())
			if err != nil {
				return err
			}
			if err := report.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			return report.Err()
		},
	}

	cmd.Flags().String("control-url", "", "DevTools URL of a running browser")
	cmd.Flags().Bool("show", false, "show the browser window")
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

// BrowserOptions configures CheckBrowser.
type BrowserOptions struct {
	URL        string
	ControlURL string
	Headless   bool
	Timeout    time.Duration
}

// CheckBrowser loads the page in Chromium and scrolls to every control target.
func CheckBrowser(ctx context.Context, opts BrowserOptions, log *slog.Logger) (*Report, error) {
	b, err := browser.Launch(ctx, browser.Options{
		ControlURL: opts.ControlURL,
		Headless:   opts.Headless,
	}, log)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	page, err := b.Open(opts.URL, opts.Timeout)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	report := &Report{}
	scroller := scroll.New(page, page)

	for _, target := range scrollTargets() {
		name := "scroll to #" + target
		scroller.ScrollToSection(target)
		if err := page.WaitSettled(ctx, 100*time.Millisecond); err != nil {
			return nil, err
		}

		inView, err := page.InView(target)
		switch {
		case err != nil:
			report.failf(name, "%v", err)
		case !inView:
			report.failf(name, "section not in viewport after scrolling")
		default:
			report.pass(name)
		}
	}

	before, err := page.ScrollY()
	if err != nil {
		return nil, err
	}
	scroller.ScrollToSection(missingSection)
	if err := page.WaitSettled(ctx, 100*time.Millisecond); err != nil {
		return nil, err
	}
	after, err := page.ScrollY()
	if err != nil {
		return nil, err
	}
	if before == after {
		report.pass("missing section is a no-op")
	} else {
		report.failf("missing section is a no-op", "scrollY moved from %.0f to %.0f", before, after)
	}

	if err := page.Err(); err != nil {
		report.failf("browser errors", "%v", err)
	}
	return report, nil
}

// scrollTargets lists each distinct CTA and nav target once, CTAs first.
func scrollTargets() []string {
	seen := map[string]bool{}
	var out []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, cta := range content.HeroCopy().CTAs {
		add(cta.Target)
	}
	for _, l := range content.NavLinks() {
		add(l.Target)
	}
	return out
}
