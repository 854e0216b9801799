package scene

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-nav/engine/camera"
	"github.com/Carmen-Shannon/oxy-nav/engine/game_object"
	"go.uber.org/zap"
)

// Behaviour is per-tick scene logic such as the joystick controller or the arm.
type Behaviour interface {
	Tick(deltaTime float32)
}

// Scene groups a scene camera, a UI camera, a registry of game objects and the behaviours
// driving them. Scenes can be paused via the Active flag.
// The registry is safe for concurrent access; Tick must only be called from the engine tick goroutine.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Active returns whether this scene is ticked.
	Active() bool

	// SetActive pauses or resumes the scene.
	SetActive(active bool)

	// Camera returns the perspective scene camera.
	Camera() camera.Camera

	// UICamera returns the orthographic camera UI elements are placed with.
	UICamera() camera.Camera

	// Add registers an object, assigning it an ID if it has none.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object with the given ID, or nil.
	Get(id uint64) game_object.GameObject

	// Find returns the first registered object with the given name, or nil.
	//
	// Parameters:
	//   - name: the object name
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil if not found
	Find(name string) game_object.GameObject

	// Count returns the number of registered objects.
	Count() int

	// AddBehaviour appends a behaviour. Behaviours tick in the order they were added.
	AddBehaviour(b Behaviour)

	// Tick updates the cameras and ticks every behaviour if the scene is active.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick
	Tick(deltaTime float32)

	// Resize updates both cameras' aspect ratio for a new framebuffer size.
	//
	// Parameters:
	//   - width, height: the framebuffer size in pixels
	Resize(width, height int)
}

type scene struct {
	mu     *sync.RWMutex
	logger *zap.Logger

	name   string
	active atomic.Bool

	cam   camera.Camera
	uiCam camera.Camera

	registry   map[uint64]game_object.GameObject
	nextID     uint64
	behaviours []Behaviour
}

var _ Scene = &scene{}

// NewScene creates an active scene.
//
// Parameters:
//   - name: the scene identifier
//   - cam: the scene camera
//   - uiCam: the UI camera
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam, uiCam camera.Camera, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		logger:   zap.NewNop(),
		name:     name,
		cam:      cam,
		uiCam:    uiCam,
		registry: make(map[uint64]game_object.GameObject),
		nextID:   1,
	}
	s.active.Store(true)
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.Named("scene").With(zap.String("scene", name))
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Active() bool {
	return s.active.Load()
}

func (s *scene) SetActive(active bool) {
	s.active.Store(active)
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) UICamera() camera.Camera {
	return s.uiCam
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add registers obj. Callers must hold the write lock.
func (s *scene) add(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = obj
	s.logger.Debug("object added", zap.Uint64("id", obj.ID()), zap.String("name", obj.Name()))
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Find(name string) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found game_object.GameObject
	for id, obj := range s.registry {
		// lowest ID wins so lookups are deterministic
		if obj.Name() == name && (found == nil || id < found.ID()) {
			found = obj
		}
	}
	return found
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) AddBehaviour(b Behaviour) {
	if b == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.behaviours = append(s.behaviours, b)
}

func (s *scene) Tick(deltaTime float32) {
	if !s.Active() {
		return
	}

	if s.cam != nil {
		s.cam.Update()
	}
	if s.uiCam != nil {
		s.uiCam.Update()
	}

	s.mu.RLock()
	behaviours := s.behaviours
	s.mu.RUnlock()

	for _, b := range behaviours {
		b.Tick(deltaTime)
	}
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	if s.cam != nil {
		s.cam.SetAspect(aspect)
	}
	if s.uiCam != nil {
		s.uiCam.SetAspect(aspect)
	}
	s.logger.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}
