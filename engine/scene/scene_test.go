package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-nav/engine/camera"
	"github.com/Carmen-Shannon/oxy-nav/engine/game_object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBehaviour struct {
	name  string
	calls *[]string
}

func (r recordingBehaviour) Tick(float32) {
	*r.calls = append(*r.calls, r.name)
}

func newTestScene(options ...SceneBuilderOption) Scene {
	return NewScene("test",
		camera.NewCamera(camera.WithController(camera.NewCameraController())),
		camera.NewCamera(camera.WithProjection(camera.ProjectionOrthographic)),
		options...,
	)
}

func TestRegistry(t *testing.T) {
	preset := game_object.NewGameObject(game_object.WithID(10), game_object.WithName("arm"))
	s := newTestScene(WithObjects(preset))

	target := game_object.NewGameObject(game_object.WithName("target"))
	id := s.Add(target)

	assert.Equal(t, uint64(11), id, "IDs continue after preset ones")
	assert.Equal(t, 2, s.Count())
	assert.Same(t, target, s.Get(id))
	assert.Same(t, preset, s.Find("arm"))
	assert.Nil(t, s.Find("missing"))

	assert.Nil(t, s.Get(99))
}

func TestFindPrefersLowestID(t *testing.T) {
	s := newTestScene()
	first := game_object.NewGameObject(game_object.WithID(7), game_object.WithName("box"))
	second := game_object.NewGameObject(game_object.WithID(3), game_object.WithName("box"))
	s.Add(first)
	s.Add(second)

	assert.Same(t, second, s.Find("box"))
}

func TestTickOrderAndActive(t *testing.T) {
	var calls []string
	s := newTestScene(WithBehaviours(
		recordingBehaviour{"navigation", &calls},
		nil,
	))
	s.AddBehaviour(recordingBehaviour{"arm", &calls})
	s.AddBehaviour(nil)

	s.Tick(0.016)
	assert.Equal(t, []string{"navigation", "arm"}, calls)

	s.SetActive(false)
	s.Tick(0.016)
	assert.Len(t, calls, 2, "inactive scenes do not tick")
	assert.False(t, s.Active())
}

func TestTickUpdatesCamera(t *testing.T) {
	ctrl := camera.NewCameraController(camera.WithRadius(50))
	cam := camera.NewCamera(camera.WithController(ctrl))
	s := NewScene("test", cam, nil)

	before := cam.Forward()
	ctrl.SetAzimuth(ctrl.Azimuth() + 1)
	s.Tick(0.016)

	assert.Greater(t, cam.Forward().Sub(before).Len(), float32(0.1))
}

func TestResize(t *testing.T) {
	s := newTestScene()
	s.Resize(1600, 800)
	require.Equal(t, float32(2), s.Camera().Aspect())
	assert.Equal(t, float32(2), s.UICamera().Aspect())

	s.Resize(0, 800)
	assert.Equal(t, float32(2), s.Camera().Aspect(), "degenerate sizes are ignored")
}
