package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {

	h := NewHistory()

	assert.Nil(t, h.Previous(1))
	assert.Nil(t, h.Points(1))

	_, ok := h.Last(1)
	assert.False(t, ok)

	assert.Equal(t, 1, h.Add(1, Pt(1, 1)))
	assert.Nil(t, h.Previous(1), "one point has no previous")

	h.Add(1, Pt(2, 2))
	h.Add(1, Pt(3, 3))
	h.Add(2, Pt(9, 9))

	assert.Equal(t, Pt(2, 2), *h.Previous(1))

	last, ok := h.Last(1)
	assert.True(t, ok)
	assert.Equal(t, Pt(3, 3), last)

	assert.Equal(t, []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}, h.Points(1))
	assert.Equal(t, []Point{Pt(2, 2), Pt(3, 3)}, h.Tail(1, 2))
	assert.Equal(t, []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}, h.Tail(1, 10))
	assert.Equal(t, 2, h.Len())
}

func TestHistoryUnbounded(t *testing.T) {

	h := NewHistory()

	for i := 0; i < 10000; i++ {
		h.Add(1, Pt(float64(i), 0))
	}

	pts := h.Points(1)
	assert.Len(t, pts, 10000)
	assert.Equal(t, Pt(0, 0), pts[0])
}

func TestBoxCenter(t *testing.T) {

	b := NewBox(10, 20, 30, 60)
	assert.Equal(t, Pt(20, 40), b.Center())
	assert.Equal(t, 20.0, b.Width())
	assert.Equal(t, 40.0, b.Height())
	assert.Equal(t, [4]float64{10, 20, 30, 60}, [4]float64{b.TLX(), b.TLY(), b.BRX(), b.BRY()})

	assert.Equal(t, b, BoxFromTlwh(10, 20, 20, 40))
	assert.Equal(t, 30, b.Rect().Max.X)
}
