package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wrapPolicy() Policy {
	p := DefaultPolicy()
	p.TermType = "ansi"
	p.Width = 80
	return p
}

func TestRendererInsertNoTail(t *testing.T) {
	r := newRenderer(wrapPolicy())
	out := r.insert('a', nil)
	assert.Equal(t, "a", string(out))
	assert.Equal(t, 1, r.col)
}

func TestRendererInsertWithTail(t *testing.T) {
	r := newRenderer(wrapPolicy())
	out := r.insert('X', []rune("bc"))
	assert.Equal(t, "Xbc\x1b[2D", string(out))
}

func TestRendererInsertManyYank(t *testing.T) {
	r := newRenderer(wrapPolicy())
	out := r.insertMany([]rune("lo "), []rune("world"))
	assert.Equal(t, "lo world\x1b[5D", string(out))
}

func TestRendererEchoOff(t *testing.T) {
	r := newRenderer(wrapPolicy())
	r.setEcho(false)
	assert.Nil(t, r.insert('a', nil))
	assert.Nil(t, r.move(1))
	assert.Nil(t, r.submit())
}

func TestRendererEraseSuffixDeleteLeft(t *testing.T) {
	r := newRenderer(wrapPolicy())
	r.col = 3 // simulating "abc" already on screen with cursor at the end
	out := r.eraseSuffix(1, 1, nil)
	assert.Equal(t, "\x1b[1D \x1b[1D", string(out))
	assert.Equal(t, 2, r.col)
}

func TestRendererEraseSuffixWithTail(t *testing.T) {
	r := newRenderer(wrapPolicy())
	r.col = 3 // "abXcd" on screen, cursor just after X
	out := r.eraseSuffix(0, 1, []rune("cd"))
	// rewrite "cd", blank the one stale trailing column beyond it, then
	// return the cursor to the start of the rewritten tail.
	assert.Equal(t, "cd \x1b[1D\x1b[2D", string(out))
	assert.Equal(t, 3, r.col)
}

func TestRendererMove(t *testing.T) {
	r := newRenderer(wrapPolicy())
	assert.Nil(t, r.move(0))
	assert.Equal(t, "\x1b[1D", string(r.move(-1)))
	assert.Equal(t, "\x1b[2C", string(r.move(2)))
}

func TestRendererSubmitResetsShadow(t *testing.T) {
	r := newRenderer(wrapPolicy())
	r.col = 10
	out := r.submit()
	assert.Equal(t, "\r\n", string(out))
	assert.Equal(t, 0, r.col)
}

func TestRendererSetLineShrink(t *testing.T) {
	r := newRenderer(wrapPolicy())
	r.col = 5 // "hello" was on screen
	out := r.setLine(5, []rune("hi"), 2)
	// move to col 0, write "hi", pad 3 spaces for the 3 columns no longer
	// covered, then return the cursor to the end of "hi".
	assert.Equal(t, "\x1b[5Dhi   \x1b[3D", string(out))
	assert.Equal(t, 2, r.col)
}

func TestRendererTruncateModeBasics(t *testing.T) {
	p := DefaultPolicy()
	p.TermType = "dumb"
	p.Width = 5
	r := newRenderer(p)
	assert.False(t, r.wrap)

	out := r.truncateRewrite([]rune("abc"), []rune(""))
	s := string(out)
	assert.Equal(t, byte('\r'), s[0])
	assert.Contains(t, s, "abc")
}

func TestRendererInvalidateResetsColumn(t *testing.T) {
	r := newRenderer(wrapPolicy())
	r.col = 42
	r.invalidate()
	assert.Equal(t, 0, r.col)
}
