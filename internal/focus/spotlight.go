package focus

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/panelkit/internal/logger"
)

// DefaultClass marks an element as the preferred target for default-element entry.
const DefaultClass = "spottable-default"

type container struct {
	id          string
	policy      Policy
	defaults    []string
	elements    []Element
	lastFocused string
}

func (c *container) index(id string) int {
	for i, el := range c.elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

func (c *container) find(selector string) (Element, bool) {
	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, el := range c.elements {
			if Matches(part, el) {
				return el, true
			}
		}
	}
	return Element{}, false
}

// Spotlight is an in-memory focus engine. Containers own an ordered list of
// elements; exactly one element across all containers may be current.
type Spotlight struct {
	mu         sync.Mutex
	containers map[string]*container
	owners     map[string]string
	current    string
	log        *logger.Logger
}

// NewSpotlight creates an empty engine. log may be nil.
func NewSpotlight(log *logger.Logger) *Spotlight {
	return &Spotlight{
		containers: make(map[string]*container),
		owners:     make(map[string]string),
		log:        log.WithField("component", "spotlight"),
	}
}

// RegisterContainer declares a container with optional default selectors,
// tried in order when entering with EnterDefaultElement. Re-registering keeps
// existing elements and policy but replaces the defaults.
func (s *Spotlight) RegisterContainer(id string, defaults ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.ensure(id)
	c.defaults = append([]string(nil), defaults...)
}

// RemoveContainer drops a container and every element it holds. If the
// current element lived there, focus is cleared.
func (s *Spotlight) RemoveContainer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[id]
	if !ok {
		return
	}
	for _, el := range c.elements {
		delete(s.owners, el.ID)
		if s.current == el.ID {
			s.current = ""
		}
	}
	delete(s.containers, id)
}

// Register adds or replaces an element inside containerID, creating the
// container on demand. Element order is registration order.
func (s *Spotlight) Register(containerID string, el Element) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.owners[el.ID]; ok && owner != containerID {
		s.unregisterLocked(el.ID)
	}

	c := s.ensure(containerID)
	if i := c.index(el.ID); i >= 0 {
		c.elements[i] = el
		return
	}
	c.elements = append(c.elements, el)
	s.owners[el.ID] = containerID
}

// Unregister removes an element. Focus is cleared if it was current.
func (s *Spotlight) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unregisterLocked(id)
}

// ClearElements removes every element of a container but keeps the
// container, its policy and its last-focused memory.
func (s *Spotlight) ClearElements(containerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[containerID]
	if !ok {
		return
	}
	for _, el := range c.elements {
		delete(s.owners, el.ID)
		if s.current == el.ID {
			s.current = ""
		}
	}
	c.elements = nil
}

// SetContainerPolicy stores the entry policy for a container.
func (s *Spotlight) SetContainerPolicy(containerID string, p Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(containerID).policy = p
}

// Policy returns the stored entry policy for a container.
func (s *Spotlight) Policy(containerID string) (Policy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[containerID]
	if !ok {
		return Policy{}, false
	}
	return c.policy, true
}

// FocusContainer resolves the container's entry policy into an element and
// focuses it.
func (s *Spotlight) FocusContainer(containerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[containerID]
	if !ok {
		s.log.WithField("container", containerID).Debug("focus miss: unknown container")
		return fmt.Errorf("container %q: %w", containerID, ErrNoFocusable)
	}

	target, ok := s.resolve(c)
	if !ok {
		s.log.WithField("container", containerID).Debug("focus miss: nothing focusable")
		return fmt.Errorf("container %q: %w", containerID, ErrNoFocusable)
	}

	s.focusLocked(c, target.ID)
	return nil
}

func (s *Spotlight) resolve(c *container) (Element, bool) {
	if c.policy.EntryRule == EnterLastFocused && c.lastFocused != "" {
		if i := c.index(c.lastFocused); i >= 0 {
			return c.elements[i], true
		}
	}
	if el, ok := c.find(c.policy.FallbackSelector); ok {
		return el, true
	}
	for _, sel := range c.defaults {
		if el, ok := c.find(sel); ok {
			return el, true
		}
	}
	if len(c.elements) > 0 {
		return c.elements[0], true
	}
	return Element{}, false
}

// Focus makes a registered element current.
func (s *Spotlight) Focus(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.owners[id]
	if !ok {
		return fmt.Errorf("element %q: %w", id, ErrUnknownElement)
	}
	s.focusLocked(s.containers[owner], id)
	return nil
}

// Blur clears the current element. Containers remember their last focus.
func (s *Spotlight) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
}

// Current returns the focused element id.
func (s *Spotlight) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != ""
}

// LastFocused returns the element a container most recently focused.
func (s *Spotlight) LastFocused(containerID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.containers[containerID]; ok {
		return c.lastFocused
	}
	return ""
}

// ContainerOf returns the container owning an element.
func (s *Spotlight) ContainerOf(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.owners[id]
	return owner, ok
}

// Move shifts focus to the neighbour of the current element inside its
// container. Up and Left go backward, Down and Right forward. It reports
// false at the container edge or when nothing is focused.
func (s *Spotlight) Move(dir Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.owners[s.current]
	if !ok {
		return false
	}
	c := s.containers[owner]
	i := c.index(s.current)
	if dir.backward() {
		i--
	} else {
		i++
	}
	if i < 0 || i >= len(c.elements) {
		return false
	}
	s.focusLocked(c, c.elements[i].ID)
	return true
}

func (s *Spotlight) focusLocked(c *container, id string) {
	s.current = id
	c.lastFocused = id
}

func (s *Spotlight) ensure(id string) *container {
	c, ok := s.containers[id]
	if !ok {
		c = &container{id: id}
		s.containers[id] = c
	}
	return c
}

func (s *Spotlight) unregisterLocked(id string) {
	owner, ok := s.owners[id]
	if !ok {
		return
	}
	c := s.containers[owner]
	if i := c.index(id); i >= 0 {
		c.elements = append(c.elements[:i], c.elements[i+1:]...)
	}
	delete(s.owners, id)
	if s.current == id {
		s.current = ""
	}
}
