package scene

import (
	"github.com/Carmen-Shannon/oxy-nav/engine/game_object"
	"go.uber.org/zap"
)

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is ticked. Scenes start active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active.Store(active)
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.add(obj)
		}
	}
}

// WithBehaviours adds initial behaviours, ticked in the given order.
func WithBehaviours(behaviours ...Behaviour) SceneBuilderOption {
	return func(s *scene) {
		for _, b := range behaviours {
			if b != nil {
				s.behaviours = append(s.behaviours, b)
			}
		}
	}
}

// WithLogger sets the logger. The scene logs under the "scene" name.
func WithLogger(logger *zap.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}
