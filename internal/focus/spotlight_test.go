package focus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPopulated(t *testing.T) *Spotlight {
	t.Helper()
	s := NewSpotlight(nil)
	s.RegisterContainer("settings", "."+DefaultClass)
	s.Register("settings", Element{ID: "wifi", Classes: []string{"spottable"}})
	s.Register("settings", Element{ID: "sound", Classes: []string{"spottable", DefaultClass}})
	s.Register("settings", Element{ID: "reset", Classes: []string{"spottable", "danger"}})
	return s
}

func TestMatches(t *testing.T) {
	el := Element{ID: "reset", Classes: []string{"spottable", "danger"}}

	assert.True(t, Matches("#reset", el))
	assert.True(t, Matches(".danger", el))
	assert.True(t, Matches("danger", el))
	assert.True(t, Matches("*", el))
	assert.True(t, Matches(".missing, #reset", el))
	assert.False(t, Matches("#wifi", el))
	assert.False(t, Matches("", el))
	assert.False(t, Matches(" , ", el))
}

func TestFocusContainer_DefaultElementUsesContainerDefaults(t *testing.T) {
	s := newPopulated(t)
	s.SetContainerPolicy("settings", Policy{EntryRule: EnterDefaultElement})

	require.NoError(t, s.FocusContainer("settings"))
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "sound", current)
}

func TestFocusContainer_FallbackSelectorWins(t *testing.T) {
	s := newPopulated(t)
	s.SetContainerPolicy("settings", Policy{EntryRule: EnterDefaultElement, FallbackSelector: ".danger"})

	require.NoError(t, s.FocusContainer("settings"))
	current, _ := s.Current()
	assert.Equal(t, "reset", current)
}

func TestFocusContainer_LastFocusedRestores(t *testing.T) {
	s := newPopulated(t)
	require.NoError(t, s.Focus("reset"))
	s.Blur()

	s.SetContainerPolicy("settings", Policy{EntryRule: EnterLastFocused})
	require.NoError(t, s.FocusContainer("settings"))

	current, _ := s.Current()
	assert.Equal(t, "reset", current)
}

func TestFocusContainer_LastFocusedFallsBackWhenGone(t *testing.T) {
	s := newPopulated(t)
	require.NoError(t, s.Focus("reset"))
	s.Unregister("reset")

	_, ok := s.Current()
	require.False(t, ok)

	require.NoError(t, s.FocusContainer("settings"))
	current, _ := s.Current()
	assert.Equal(t, "sound", current)
}

func TestFocusContainer_NoFocusable(t *testing.T) {
	s := NewSpotlight(nil)
	s.RegisterContainer("empty")

	err := s.FocusContainer("empty")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFocusable))

	err = s.FocusContainer("missing")
	assert.True(t, errors.Is(err, ErrNoFocusable))
}

func TestFocus_UnknownElement(t *testing.T) {
	s := NewSpotlight(nil)
	err := s.Focus("ghost")
	assert.True(t, errors.Is(err, ErrUnknownElement))
}

func TestMove(t *testing.T) {
	s := newPopulated(t)

	assert.False(t, s.Move(Down), "nothing focused yet")

	require.NoError(t, s.Focus("wifi"))
	assert.False(t, s.Move(Up))
	assert.True(t, s.Move(Down))
	current, _ := s.Current()
	assert.Equal(t, "sound", current)

	assert.True(t, s.Move(Right))
	assert.False(t, s.Move(Right))
	assert.Equal(t, "reset", s.LastFocused("settings"))

	assert.True(t, s.Move(Left))
	current, _ = s.Current()
	assert.Equal(t, "sound", current)
}

func TestRegister_MovesElementBetweenContainers(t *testing.T) {
	s := newPopulated(t)
	s.Register("other", Element{ID: "wifi"})

	owner, ok := s.ContainerOf("wifi")
	require.True(t, ok)
	assert.Equal(t, "other", owner)

	s.SetContainerPolicy("settings", Policy{EntryRule: EnterLastFocused})
	require.NoError(t, s.FocusContainer("settings"))
	current, _ := s.Current()
	assert.Equal(t, "sound", current)
}

func TestClearElementsKeepsPolicy(t *testing.T) {
	s := newPopulated(t)
	s.SetContainerPolicy("settings", Policy{EntryRule: EnterDefaultElement, FallbackSelector: "#reset"})
	require.NoError(t, s.Focus("wifi"))

	s.ClearElements("settings")
	_, ok := s.Current()
	assert.False(t, ok)

	p, ok := s.Policy("settings")
	require.True(t, ok)
	assert.Equal(t, "#reset", p.FallbackSelector)
	assert.True(t, errors.Is(s.FocusContainer("settings"), ErrNoFocusable))
}

func TestRemoveContainer(t *testing.T) {
	s := newPopulated(t)
	require.NoError(t, s.Focus("sound"))

	s.RemoveContainer("settings")
	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Policy("settings")
	assert.False(t, ok)
	_, ok = s.ContainerOf("sound")
	assert.False(t, ok)
}

func TestEntryRuleString(t *testing.T) {
	assert.Equal(t, "last-focused", EnterLastFocused.String())
	assert.Equal(t, "default-element", EnterDefaultElement.String())
	assert.Equal(t, "down", Down.String())
}

func TestFocusContainer_SelectorListTriedInOrder(t *testing.T) {
	s := newPopulated(t)
	s.SetContainerPolicy("settings", Policy{EntryRule: EnterDefaultElement, FallbackSelector: "#missing, .danger, #wifi"})

	require.NoError(t, s.FocusContainer("settings"))
	current, _ := s.Current()
	assert.Equal(t, "reset", current, "earlier selectors win over element order")
}
