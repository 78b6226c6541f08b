package theme_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertbox/pkg/theme"
)

func TestIsColor(t *testing.T) {
	valid := []string{"#fff", "#112233", "#11223344", "rgb(1,2,3)", "rgba(1,2,3,0.5)", "hsl(0,0%,0%)", "hsla(0,0%,0%,1)", "red", "notacolorname"}
	for _, c := range valid {
		t.Run(c, func(t *testing.T) {
			assert.True(t, theme.IsColor(c))
		})
	}

	invalid := []string{"", "123", "#", "#xyz", " red", "-blue"}
	for _, c := range invalid {
		t.Run("invalid "+c, func(t *testing.T) {
			assert.False(t, theme.IsColor(c))
		})
	}
}

func TestPalette_Lookup(t *testing.T) {
	p := theme.DefaultPalette()

	c, ok := p.Lookup(theme.Success)
	require.True(t, ok)
	assert.Equal(t, theme.Colors{Title: "#047857", Description: "#10b981", Icon: "#10b981"}, c)

	danger, ok := p.Lookup("error")
	require.True(t, ok)
	assert.Equal(t, "#b91c1c", danger.Title)

	_, ok = p.Lookup("bogus")
	assert.False(t, ok)

	var empty theme.Palette
	_, ok = empty.Lookup(theme.Info)
	assert.False(t, ok)
}

func TestColors_Merge(t *testing.T) {
	got := theme.Colors{Title: "red"}.Merge(theme.Colors{Title: "blue", Description: "green", Icon: "black"})
	assert.Equal(t, theme.Colors{Title: "red", Description: "green", Icon: "black"}, got)
}

func TestStore(t *testing.T) {
	t.Run("nil palette uses defaults", func(t *testing.T) {
		s := theme.NewStore(nil)
		assert.Equal(t, theme.DefaultPalette(), s.Palette())
	})

	t.Run("set replaces palette", func(t *testing.T) {
		s := theme.NewStore(theme.DefaultPalette())
		s.Set(theme.Palette{theme.Info: {Title: "navy"}})

		c, ok := s.Lookup(theme.Info)
		require.True(t, ok)
		assert.Equal(t, "navy", c.Title)

		_, ok = s.Lookup(theme.Success)
		assert.False(t, ok)
	})

	t.Run("palette copy is detached", func(t *testing.T) {
		s := theme.NewStore(theme.DefaultPalette())
		p := s.Palette()
		p[theme.Info] = theme.Colors{Title: "changed"}

		c, _ := s.Lookup(theme.Info)
		assert.Equal(t, "#1d4ed8", c.Title)
	})

	t.Run("concurrent set and lookup", func(t *testing.T) {
		s := theme.NewStore(nil)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				s.Set(theme.DefaultPalette())
			}()
			go func() {
				defer wg.Done()
				_, ok := s.Lookup(theme.Warning)
				assert.True(t, ok)
			}()
		}
		wg.Wait()
	})
}
