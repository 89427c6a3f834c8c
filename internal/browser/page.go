package browser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"

	"github.com/dennoAiden/swiper-venture/internal/scroll"
	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

// Page is a loaded document. It is both the scroll.Locator and the
// scroll.Viewport for that document.
type Page struct {
	page *rod.Page
	log  *slog.Logger

	mu      sync.Mutex
	lastErr error
}

var (
	_ scroll.Locator  = (*Page)(nil)
	_ scroll.Viewport = (*Page)(nil)
)

type element struct {
	id string
	el *rod.Element
}

func (e *element) ID() string { return e.id }

// FindByID returns the first element whose id attribute equals id.
func (p *Page) FindByID(id string) (scroll.Element, bool) {
	els, err := p.page.Elements(fmt.Sprintf("[id=%q]", id))
	if err != nil {
		p.fail("find element", err, id)
		return nil, false
	}
	if len(els) == 0 {
		return nil, false
	}
	return &element{id: id, el: els[0]}, true
}

// ScrollIntoView hands the command to the page. The browser owns the
// animation; failures are kept for Err.
func (p *Page) ScrollIntoView(el scroll.Element, behavior scroll.Behavior) {
	e, ok := el.(*element)
	if !ok {
		p.fail("scroll into view", fmt.Errorf("element %T not from this page", el), el.ID())
		return
	}
	if _, err := e.el.Eval(`(b) => this.scrollIntoView({ behavior: b })`, string(behavior)); err != nil {
		p.fail("scroll into view", err, e.id)
	}
}

// Err returns the last browser error seen by FindByID or ScrollIntoView.
func (p *Page) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

func (p *Page) fail(op string, err error, id string) {
	p.log.Warn(op+" failed", slog.String("id", id), logger.Error(err))
	p.mu.Lock()
	p.lastErr = fmt.Errorf("%s %q: %w", op, id, err)
	p.mu.Unlock()
}

// ScrollY is the document's vertical scroll offset in CSS pixels.
func (p *Page) ScrollY() (float64, error) {
	res, err := p.page.Eval(`() => window.scrollY`)
	if err != nil {
		return 0, fmt.Errorf("read scrollY: %w", err)
	}
	return res.Value.Num(), nil
}

// Height is the viewport's inner height in CSS pixels.
func (p *Page) Height() (float64, error) {
	res, err := p.page.Eval(`() => window.innerHeight`)
	if err != nil {
		return 0, fmt.Errorf("read innerHeight: %w", err)
	}
	return res.Value.Num(), nil
}

// Top returns the element's top edge relative to the viewport.
func (p *Page) Top(id string) (float64, bool, error) {
	res, err := p.page.Eval(`(id) => {
		const el = document.getElementById(id);
		return el ? el.getBoundingClientRect().top : null;
	}`, id)
	if err != nil {
		return 0, false, fmt.Errorf("read top of %q: %w", id, err)
	}
	if res.Value.Nil() {
		return 0, false, nil
	}
	return res.Value.Num(), true, nil
}

// InView reports whether the element's top edge lies inside the viewport.
func (p *Page) InView(id string) (bool, error) {
	top, ok, err := p.Top(id)
	if err != nil || !ok {
		return false, err
	}
	height, err := p.Height()
	if err != nil {
		return false, err
	}
	return top >= -1 && top < height, nil
}

// WaitSettled polls scrollY until it stops changing.
func (p *Page) WaitSettled(ctx context.Context, interval time.Duration) error {
	last, err := p.ScrollY()
	if err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	stable := 0
	for stable < 3 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		y, err := p.ScrollY()
		if err != nil {
			return err
		}
		if y == last {
			stable++
		} else {
			stable = 0
			last = y
		}
	}
	return nil
}

// Close closes the tab.
func (p *Page) Close() error {
	return p.page.Close()
}
