//nolint:goconst // test cases intentionally repeat strings for readability
package lineinput

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(runeKey(string(r)))
	}
}

func TestBuffer_New(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		empty   bool
	}{
		{"empty", "", true},
		{"seeded", "hello", false},
		{"unicode", "héllo wörld", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewString(tt.initial)
			assert.Equal(t, 0, b.Cursor(), "cursor must start at 0 regardless of seed")
			assert.Equal(t, tt.empty, b.IsEmpty())
			assert.Equal(t, tt.initial, b.Text())
			assert.Equal(t, len([]rune(tt.initial)), b.Len())
		})
	}
}

func TestBuffer_NewCopiesInitial(t *testing.T) {
	initial := []rune("abc")
	b := New(initial)
	initial[0] = 'x'

	assert.Equal(t, "abc", b.Text())
}

func TestEditor_TypeRoundTrip(t *testing.T) {
	e := NewEditor("")

	for _, r := range "abc" {
		effect := e.HandleKey(runeKey(string(r)))
		assert.Equal(t, TextChanged, effect)
	}

	assert.Equal(t, "abc", e.Text())
	assert.Equal(t, 3, e.Cursor())
}

func TestEditor_InsertInMiddle(t *testing.T) {
	e := NewEditor("ac")
	require.Equal(t, CursorMoved, e.HandleKey(specialKey(tea.KeyRight)))
	require.Equal(t, 1, e.Cursor())

	effect := e.HandleKey(runeKey("b"))

	assert.Equal(t, TextChanged, effect)
	assert.Equal(t, "abc", e.Text())
	assert.Equal(t, 2, e.Cursor())
}

func TestEditor_InsertAtStartOfSeed(t *testing.T) {
	e := NewEditor("world")

	typeText(e, "hi ")

	assert.Equal(t, "hi world", e.Text())
	assert.Equal(t, 3, e.Cursor())
}

func TestEditor_BackspaceRemovesLeftOfCursor(t *testing.T) {
	e := NewEditor("abc")
	e.HandleKey(specialKey(tea.KeyRight))
	e.HandleKey(specialKey(tea.KeyRight))
	require.Equal(t, 2, e.Cursor())

	effect := e.HandleKey(specialKey(tea.KeyBackspace))

	assert.Equal(t, TextChanged, effect)
	assert.Equal(t, "ac", e.Text())
	assert.Equal(t, 1, e.Cursor())
}

func TestEditor_BackspaceAtEnd(t *testing.T) {
	e := NewEditor("")
	typeText(e, "hello")

	e.HandleKey(specialKey(tea.KeyBackspace))
	e.HandleKey(specialKey(tea.KeyBackspace))

	assert.Equal(t, "hel", e.Text())
	assert.Equal(t, 3, e.Cursor())
}

func TestEditor_BackspaceNoop(t *testing.T) {
	t.Run("empty buffer is idempotent", func(t *testing.T) {
		e := NewEditor("")
		for range 5 {
			assert.Equal(t, Acknowledged, e.HandleKey(specialKey(tea.KeyBackspace)))
			assert.Equal(t, "", e.Text())
			assert.Equal(t, 0, e.Cursor())
		}
	})

	t.Run("cursor at start of seeded buffer", func(t *testing.T) {
		e := NewEditor("abc")
		assert.Equal(t, Acknowledged, e.HandleKey(specialKey(tea.KeyBackspace)))
		assert.Equal(t, "abc", e.Text())
		assert.Equal(t, 0, e.Cursor())
	})
}

func TestEditor_BoundaryMovement(t *testing.T) {
	e := NewEditor("ab")

	assert.Equal(t, Acknowledged, e.HandleKey(specialKey(tea.KeyLeft)))
	assert.Equal(t, 0, e.Cursor())

	assert.Equal(t, CursorMoved, e.HandleKey(specialKey(tea.KeyRight)))
	assert.Equal(t, CursorMoved, e.HandleKey(specialKey(tea.KeyRight)))
	assert.Equal(t, 2, e.Cursor())

	assert.Equal(t, Acknowledged, e.HandleKey(specialKey(tea.KeyRight)))
	assert.Equal(t, 2, e.Cursor())

	assert.Equal(t, CursorMoved, e.HandleKey(specialKey(tea.KeyLeft)))
	assert.Equal(t, 1, e.Cursor())
	assert.Equal(t, "ab", e.Text())
}

func TestEditor_MovementOnEmpty(t *testing.T) {
	e := NewEditor("")

	assert.Equal(t, Acknowledged, e.HandleKey(specialKey(tea.KeyLeft)))
	assert.Equal(t, Acknowledged, e.HandleKey(specialKey(tea.KeyRight)))
	assert.Equal(t, 0, e.Cursor())
}

func TestEditor_UnrecognizedKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		specialKey(tea.KeyF1),
		specialKey(tea.KeyF12),
		specialKey(tea.KeyEnter),
		specialKey(tea.KeyEscape),
		specialKey(tea.KeyTab),
		specialKey(tea.KeyUp),
		specialKey(tea.KeyDown),
		specialKey(tea.KeyHome),
		specialKey(tea.KeyDelete),
		specialKey(tea.KeyCtrlC),
		specialKey(tea.KeyCtrlH),
		{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true},
		{Type: tea.KeySpace, Runes: []rune{' '}, Alt: true},
		{Type: tea.KeyBackspace, Alt: true},
		{Type: tea.KeyLeft, Alt: true},
		{Type: tea.KeyRight, Alt: true},
		{Type: tea.KeyRunes, Runes: []rune{'\x07'}},
		{Type: tea.KeyRunes},
	}

	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			e := NewEditor("abc")
			e.HandleKey(specialKey(tea.KeyRight))

			effect := e.HandleKey(k)

			assert.Equal(t, NotHandled, effect)
			assert.False(t, effect.Handled())
			assert.Equal(t, "abc", e.Text())
			assert.Equal(t, 1, e.Cursor())
		})
	}
}

func TestEditor_SpaceKey(t *testing.T) {
	e := NewEditor("")
	typeText(e, "a")

	assert.Equal(t, TextChanged, e.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	typeText(e, "b")

	assert.Equal(t, "a b", e.Text())
}

func TestEditor_PasteInsertsAllRunes(t *testing.T) {
	e := NewEditor("ad")
	e.HandleKey(specialKey(tea.KeyRight))

	effect := e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bc"), Paste: true})

	assert.Equal(t, TextChanged, effect)
	assert.Equal(t, "abcd", e.Text())
	assert.Equal(t, 3, e.Cursor())
}

func TestEditor_PasteDropsControlRunes(t *testing.T) {
	e := NewEditor("")

	e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\tb\nc")})

	assert.Equal(t, "abc", e.Text())
	assert.Equal(t, 3, e.Cursor())
}

func TestEditor_UnicodeCharacters(t *testing.T) {
	e := NewEditor("")
	typeText(e, "日本")
	e.HandleKey(specialKey(tea.KeyLeft))
	e.HandleKey(runeKey("の"))

	assert.Equal(t, "日の本", e.Text())
	assert.Equal(t, 2, e.Cursor())

	e.HandleKey(specialKey(tea.KeyBackspace))
	assert.Equal(t, "日本", e.Text())
}

func TestEditor_CursorInvariantHolds(t *testing.T) {
	keys := []tea.KeyMsg{
		runeKey("a"),
		runeKey("é"),
		specialKey(tea.KeyBackspace),
		specialKey(tea.KeyLeft),
		specialKey(tea.KeyRight),
		specialKey(tea.KeyF5),
		{Type: tea.KeySpace, Runes: []rune{' '}},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for seed := range 20 {
		e := NewEditor(string(rune('a' + seed%26)))
		for i := range 500 {
			k := keys[rng.IntN(len(keys))]
			e.HandleKey(k)
			if e.Cursor() < 0 || e.Cursor() > e.Buffer().Len() {
				t.Fatalf("seed %d step %d: cursor %d outside [0, %d]", seed, i, e.Cursor(), e.Buffer().Len())
			}
		}
	}
}

func TestEffect_Handled(t *testing.T) {
	tests := []struct {
		effect  Effect
		handled bool
	}{
		{NotHandled, false},
		{TextChanged, true},
		{CursorMoved, true},
		{Acknowledged, true},
	}

	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			assert.Equal(t, tt.handled, tt.effect.Handled())
		})
	}
}

func TestBuffer_Segments(t *testing.T) {
	tests := []struct {
		name   string
		moves  int
		before string
		at     string
		after  string
	}{
		{"cursor at start", 0, "", "a", "bc"},
		{"cursor in middle", 1, "a", "b", "c"},
		{"cursor on last", 2, "ab", "c", ""},
		{"cursor at end", 3, "abc", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditor("abc")
			for range tt.moves {
				e.HandleKey(specialKey(tea.KeyRight))
			}
			before, at, after := e.Buffer().Segments()
			assert.Equal(t, tt.before, before)
			assert.Equal(t, tt.at, at)
			assert.Equal(t, tt.after, after)
		})
	}
}
