package game_object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertQuatNear(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	assert.InDeltaSlice(t,
		[]float32{want.W, want.V[0], want.V[1], want.V[2]},
		[]float32{got.W, got.V[0], got.V[1], got.V[2]},
		1e-5, "want %v, got %v", want, got)
}

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	assert.True(t, obj.Enabled())
	assert.Equal(t, mgl32.Vec3{}, obj.WorldPosition())
	assert.Equal(t, mgl32.QuatIdent(), obj.WorldRotation())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, obj.Scale())
}

func TestGameObjectOptions(t *testing.T) {
	rot := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	obj := NewGameObject(
		WithID(7),
		WithName("target"),
		WithEnabled(false),
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithRotation(rot),
		WithScale(mgl32.Vec3{2, 2, 2}),
	)

	assert.Equal(t, uint64(7), obj.ID())
	assert.Equal(t, "target", obj.Name())
	assert.False(t, obj.Enabled())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.WorldPosition())
	assertQuatNear(t, rot, obj.WorldRotation())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, obj.Scale())
}

func TestGameObjectTransform(t *testing.T) {
	obj := NewGameObject()

	obj.SetWorldPosition(mgl32.Vec3{4, 5, 6})
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, obj.WorldPosition())

	// rotations are stored normalized
	obj.SetWorldRotation(mgl32.Quat{W: 2})
	assertQuatNear(t, mgl32.QuatIdent(), obj.WorldRotation())

	obj.SetEnabled(false)
	assert.False(t, obj.Enabled())
}

func TestModelMatrix(t *testing.T) {
	obj := NewGameObject(
		WithPosition(mgl32.Vec3{10, 0, 0}),
		WithRotation(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})),
		WithScale(mgl32.Vec3{2, 2, 2}),
	)

	// local -Z, scaled by 2 and yawed 90° left, then translated
	got := obj.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 1}).Vec3()
	assert.InDeltaSlice(t, []float32{8, 0, 0}, got[:], 1e-4, "got %v", got)
}

func TestSetID(t *testing.T) {
	obj := NewGameObject()
	assert.Zero(t, obj.ID())
	obj.SetID(42)
	assert.Equal(t, uint64(42), obj.ID())
}
