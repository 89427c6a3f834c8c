// Package scroll moves a viewport to named page sections.
//
// A Scroller looks a section up through a Locator and, when it exists, sends a
// single smooth-scroll command to a Viewport. A missing section is a content
// defect, not a runtime condition: the call returns without effect.
package scroll

// Behavior is the motion requested from the viewport.
type Behavior string

const (
	BehaviorSmooth  Behavior = "smooth"
	BehaviorInstant Behavior = "instant"
	BehaviorAuto    Behavior = "auto"
)

// Section identifiers rendered on the landing page.
const (
	SectionHome     = "home"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// Element is a handle to a located section.
type Element interface {
	ID() string
}

// Locator finds elements by identifier in the current document.
type Locator interface {
	FindByID(id string) (Element, bool)
}

// Viewport accepts scroll commands. Commands are one-way: the viewport owns
// the animation, and a later command replaces an unfinished one.
type Viewport interface {
	ScrollIntoView(el Element, behavior Behavior)
}

// Scroller scrolls sections into view. It holds no state of its own and is
// safe for concurrent use when its collaborators are.
type Scroller struct {
	locator  Locator
	viewport Viewport
}

func New(locator Locator, viewport Viewport) *Scroller {
	return &Scroller{locator: locator, viewport: viewport}
}

// ScrollToSection requests a smooth scroll to the section named id.
// Unknown ids are ignored. A Locator reporting ok with a nil interface is
// treated as a miss; a typed nil pointer is passed through to the Viewport.
func (s *Scroller) ScrollToSection(id string) {
	el, ok := s.locator.FindByID(id)
	if !ok || el == nil {
		return
	}
	s.viewport.ScrollIntoView(el, BehaviorSmooth)
}
