package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat3Identity(t *testing.T) {
	point := Vec3[float32]{3, 4, 1}
	assert.Equal(t, point, IdentityMat3[float32]().Transform(point))
}

func TestMat3TranslationTransform(t *testing.T) {
	m := TranslationMat3[float32](10, -5)

	got := m.Transform(Vec3[float32]{1, 2, 1})
	assert.Equal(t, Vec3[float32]{11, -3, 1}, got)
}

func TestMat3ScaleTransform(t *testing.T) {
	m := ScaleMat3[float32](2, 3)

	got := m.Transform(Vec3[float32]{1, 2, 1})
	assert.Equal(t, Vec3[float32]{2, 6, 1}, got)
}

func TestMat3MulMatchesTransform(t *testing.T) {
	a := TranslationMat3[float32](4, 7).Rotate(0.5)
	b := ScaleMat3[float32](2, 3).Translate(-1, 1)

	point := Vec3[float32]{3, -2, 1}

	composed := a.Mul(b).Transform(point)
	sequential := a.Transform(b.Transform(point))

	assert.InDelta(t, sequential[0], composed[0], 1e-4)
	assert.InDelta(t, sequential[1], composed[1], 1e-4)
	assert.InDelta(t, sequential[2], composed[2], 1e-4)
}

func TestMat3Rotation(t *testing.T) {
	const halfPi = 3.14159265 / 2

	m := RotationMat3[float32](halfPi)
	got := m.Transform(Vec3[float32]{1, 0, 1})

	assert.InDelta(t, 0, got[0], 1e-3)
	assert.InDelta(t, 1, got[1], 1e-3)
}

func TestMat3Row(t *testing.T) {
	m := TranslationMat3[float32](10, 20)

	assert.Equal(t, Vec3[float32]{1, 0, 10}, m.Row(0))
	assert.Equal(t, Vec3[float32]{0, 1, 20}, m.Row(1))
}

func TestMat3ToWGPU(t *testing.T) {
	m := Mat3[float32]{1, 2, 3, 4, 5, 6, 7, 8, 9}

	want := [12]float32{1, 2, 3, 0, 4, 5, 6, 0, 7, 8, 9, 0}
	assert.Equal(t, want, m.ToWGPU())
}
