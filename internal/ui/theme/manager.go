package theme

import (
	"slices"
	"sync/atomic"
)

// DefaultName is the theme used when config names none or an unknown one.
const DefaultName = "tokyonight"

type entry struct {
	name    string
	palette Theme
}

// themes is also the order the T key cycles through.
var themes = []entry{
	{"dracula", Dracula},
	{"gruvbox", Gruvbox},
	{"nord", Nord},
	{"tokyonight", TokyoNight},
}

// active indexes themes.
var active atomic.Int32

func init() {
	active.Store(int32(indexOf(DefaultName)))
}

func indexOf(name string) int {
	return slices.IndexFunc(themes, func(e entry) bool { return e.name == name })
}

// Current returns the active palette.
func Current() Theme { return themes[active.Load()].palette }

// CurrentName returns the name of the active palette.
func CurrentName() string { return themes[active.Load()].name }

// Names lists the palettes in cycle order.
func Names() []string {
	names := make([]string, len(themes))
	for i, e := range themes {
		names[i] = e.name
	}
	return names
}

// SetTheme switches to the named palette and reports whether it exists.
func SetTheme(name string) bool {
	i := indexOf(name)
	if i < 0 {
		return false
	}
	active.Store(int32(i))
	return true
}

// CycleTheme moves to the next palette, wrapping at the end, and returns
// its name.
func CycleTheme() string {
	for {
		cur := active.Load()
		next := (cur + 1) % int32(len(themes))
		if active.CompareAndSwap(cur, next) {
			return themes[next].name
		}
	}
}

// Apply sets the named theme, falling back to the default when the name is
// unknown. It returns the name that ended up active.
func Apply(name string) string {
	if !SetTheme(name) {
		SetTheme(DefaultName)
	}
	return CurrentName()
}
