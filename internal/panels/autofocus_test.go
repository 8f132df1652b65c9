package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAutoFocus(t *testing.T) {
	assert.Equal(t, AutoFocus{Kind: LastFocused}, ParseAutoFocus(""))
	assert.Equal(t, AutoFocus{Kind: LastFocused}, ParseAutoFocus("last-focused"))
	assert.Equal(t, AutoFocus{Kind: NoAutoFocus}, ParseAutoFocus(" none "))
	assert.Equal(t, AutoFocus{Kind: DefaultElement}, ParseAutoFocus("default-element"))
	assert.Equal(t, AutoFocus{Kind: CustomSelector, Selector: "#reset"}, Selector("#reset"))

	for _, value := range []string{"none", "last-focused", "default-element", ".danger"} {
		assert.Equal(t, value, ParseAutoFocus(value).String())
	}
	assert.Equal(t, "last-focused", AutoFocus{}.String())
}

func TestRegion(t *testing.T) {
	_, ok := Hidden().Content()
	assert.False(t, ok)

	content, ok := Visible(nil).Content()
	assert.True(t, ok)
	assert.Nil(t, content)
}
