package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/dennoAiden/swiper-venture/internal/components"
	"github.com/dennoAiden/swiper-venture/internal/config"
	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

// Pages serves the public website.
type Pages struct {
	site components.Site
	log  *slog.Logger
}

func NewPages(cfg *config.WebsiteConfig, log *slog.Logger) *Pages {
	return &Pages{
		site: components.Site{
			Name:       cfg.SiteName,
			APIBaseURL: cfg.APIBaseURL,
		},
		log: log.With(logger.Scope("website.pages")),
	}
}

func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := components.LandingPage(p.site).Render(&buf); err != nil {
		p.log.Error("render landing page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
