package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	assert.Equal(t, 40.0, r.Right)
	assert.Equal(t, 60.0, r.Bottom)
	assert.Equal(t, Size{Width: 30, Height: 40}, r.Size())
	assert.Equal(t, Offset{X: 10, Y: 20}, r.Origin())
}

func TestRectWithOriginKeepsSize(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50).WithOrigin(Offset{X: 5, Y: 7})
	assert.Equal(t, RectFromLTWH(5, 7, 100, 50), r)
}

func TestEqualTruncatedIgnoresFractions(t *testing.T) {
	tests := []struct {
		name string
		a, b Size
		want bool
	}{
		{"identical", Size{10, 20}, Size{10, 20}, true},
		{"sub-point jitter", Size{10.2, 20.9}, Size{10.7, 20.1}, true},
		{"crosses integer", Size{10.9, 20}, Size{11.0, 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeEqualTruncated(tt.a, tt.b))
		})
	}
}

func TestEdgeInsets(t *testing.T) {
	e := EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	assert.Equal(t, 6.0, e.Horizontal())
	assert.Equal(t, 4.0, e.Vertical())
	assert.Equal(t, EdgeInsets{5, 5, 5, 5}, EdgeInsetsAll(5))
}
