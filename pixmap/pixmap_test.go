package pixmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twinwm/twin/compose"
	"github.com/twinwm/twin/fixed"
)

type fakeScreen struct {
	damaged []fixed.Rect
	raised  []*Pixmap
	lowered []*Pixmap
	removed []*Pixmap
}

func (f *fakeScreen) damagePixmap(p *Pixmap, r fixed.Rect) { f.damaged = append(f.damaged, r) }
func (f *fakeScreen) raise(p *Pixmap)                      { f.raised = append(f.raised, p) }
func (f *fakeScreen) lower(p *Pixmap)                      { f.lowered = append(f.lowered, p) }
func (f *fakeScreen) remove(p *Pixmap)                     { f.removed = append(f.removed, p) }

func TestCreateHasFullClip(t *testing.T) {
	p := Create(compose.FormatARGB32, 10, 8)
	assert.Equal(t, fixed.MakeRect(0, 0, 10, 8), p.GetClip())
}

func TestClipIntersectsExistingClip(t *testing.T) {
	p := Create(compose.FormatARGB32, 10, 10)
	p.Clip(fixed.MakeRect(2, 2, 8, 8))
	p.Clip(fixed.MakeRect(0, 0, 5, 5))
	assert.Equal(t, fixed.MakeRect(2, 2, 5, 5), p.GetClip())
}

func TestSaveRestoreRoundTrips(t *testing.T) {
	p := Create(compose.FormatARGB32, 10, 10)
	orig := p.GetClip()
	p.Save()
	p.Clip(fixed.MakeRect(1, 1, 4, 4))
	assert.NotEqual(t, orig, p.GetClip())
	p.Restore()
	assert.Equal(t, orig, p.GetClip())
}

func TestRestoreOnEmptyStackIsNoop(t *testing.T) {
	p := Create(compose.FormatARGB32, 4, 4)
	orig := p.GetClip()
	p.Restore()
	assert.Equal(t, orig, p.GetClip())
}

func TestOriginTracksClipTopLeft(t *testing.T) {
	p := Create(compose.FormatARGB32, 10, 10)
	p.Clip(fixed.MakeRect(3, 4, 9, 9))
	origin := p.GetOrigin()
	assert.Equal(t, 3, fixed.FixedToInt(origin.X))
	assert.Equal(t, 4, fixed.FixedToInt(origin.Y))
}

func TestDisableUpdateCounterBalances(t *testing.T) {
	p := Create(compose.FormatARGB32, 4, 4)
	scr := &fakeScreen{}
	p.Show(scr, 0, 0, false)
	scr.damaged = nil

	p.DisableUpdate()
	p.DisableUpdate()
	p.Damage(fixed.MakeRect(0, 0, 4, 4))
	assert.Empty(t, scr.damaged, "damage suppressed while disabled")

	p.EnableUpdate()
	assert.Empty(t, scr.damaged, "still disabled at count 1")
	p.EnableUpdate()
	assert.NotEmpty(t, scr.damaged, "re-enabled at count 0 triggers damage")
}

func TestDamageForwardsInScreenSpace(t *testing.T) {
	p := Create(compose.FormatARGB32, 10, 10)
	scr := &fakeScreen{}
	p.Show(scr, 5, 5, false)
	scr.damaged = nil

	p.Damage(fixed.MakeRect(1, 1, 3, 3))
	assert.Equal(t, fixed.MakeRect(6, 6, 8, 8), scr.damaged[0])
}

func TestTransparentOutOfBoundsIsTrue(t *testing.T) {
	p := Create(compose.FormatARGB32, 2, 2)
	assert.True(t, p.Transparent(-1, 0))
	assert.True(t, p.Transparent(0, -1))
	assert.True(t, p.Transparent(5, 5))
}

func TestTransparentZeroAlphaIsTrue(t *testing.T) {
	p := Create(compose.FormatARGB32, 2, 2)
	assert.True(t, p.Transparent(0, 0))
	p.Surface.Set(0, 0, 0xFF000000)
	assert.False(t, p.Transparent(0, 0))
}

func TestShowHideTogglesZOrder(t *testing.T) {
	p := Create(compose.FormatARGB32, 4, 4)
	scr := &fakeScreen{}
	p.Show(scr, 0, 0, false)
	assert.Len(t, scr.raised, 1)

	p.Hide()
	assert.Len(t, scr.removed, 1)
}

func TestCreateConstDestroyDoesNotNilSurface(t *testing.T) {
	s := compose.NewSurface(compose.FormatARGB32, 2, 2)
	p := CreateConst(s)
	p.Destroy()
	assert.NotNil(t, p.Surface)
}

func TestResampleBufferGrowsNotShrinks(t *testing.T) {
	p := Create(compose.FormatARGB32, 4, 4)
	buf := p.resampleBuffer(8)
	assert.Len(t, buf, 8)
	cap8 := cap(p.resampleScratch)
	buf = p.resampleBuffer(3)
	assert.Len(t, buf, 3)
	assert.Equal(t, cap8, cap(p.resampleScratch), "shrinking a request must not reallocate")
}
