package scene

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// ViewModes lists the rendering modes the scene accepts for "vset /viewmode".
var ViewModes = []string{"lit", "normal", "depth", "object_mask", "wireframe"}

// Pawn is the player avatar. The command surface treats camera 0 specially:
// moving it moves the pawn.
type Pawn struct {
	mu       sync.RWMutex
	location Vector
	rotation Rotator
}

// Location returns the pawn location.
func (p *Pawn) Location() Vector {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.location
}

// SetLocation teleports the pawn.
func (p *Pawn) SetLocation(v Vector) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = v
}

// Rotation returns the pawn orientation.
func (p *Pawn) Rotation() Rotator {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rotation
}

// SetRotation orients the pawn.
func (p *Pawn) SetRotation(r Rotator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rotation = r
}

// --------------------------------------------------------------------------
// Scene
// --------------------------------------------------------------------------

// Scene is the live in-process state the command handlers operate on: the
// registered sensors, the named objects, the player pawn and the active view
// mode. All methods are safe for concurrent use.
//
// Enumeration order of sensors and objects is their registration order, which
// is also the order command responses list them in.
type Scene struct {
	sensors      *xsync.MapOf[uint32, *Sensor]
	sensorOrder  []*Sensor
	sensorMu     sync.RWMutex
	nextSensorID atomic.Uint32

	objects     *xsync.MapOf[string, *Object]
	objectOrder []*Object
	objectMu    sync.RWMutex

	pawn     Pawn
	viewMode atomic.Value // string
}

// NewScene creates an empty scene in "lit" view mode.
func NewScene() *Scene {
	s := &Scene{
		sensors: xsync.NewMapOf[uint32, *Sensor](),
		objects: xsync.NewMapOf[string, *Object](),
	}
	s.viewMode.Store("lit")
	return s
}

// AddSensor registers a new sensor under the next free id and returns it.
// The first sensor gets id 0.
func (s *Scene) AddSensor(name string) *Sensor {
	sensor := &Sensor{
		id:         s.nextSensorID.Add(1) - 1,
		name:       name,
		fov:        defaultFOV,
		filmWidth:  defaultFilmWidth,
		filmHeight: defaultFilmHeight,
	}

	s.sensors.Store(sensor.id, sensor)

	s.sensorMu.Lock()
	s.sensorOrder = append(s.sensorOrder, sensor)
	s.sensorMu.Unlock()

	return sensor
}

// Sensor looks a sensor up by id.
func (s *Scene) Sensor(id uint32) (*Sensor, bool) {
	return s.sensors.Load(id)
}

// Sensors returns all sensors in registration order.
func (s *Scene) Sensors() []*Sensor {
	s.sensorMu.RLock()
	defer s.sensorMu.RUnlock()
	out := make([]*Sensor, len(s.sensorOrder))
	copy(out, s.sensorOrder)
	return out
}

// SpawnObject adds a named, visible object at the origin. Names are unique.
func (s *Scene) SpawnObject(name string) (*Object, error) {
	obj := &Object{
		name:    name,
		scale:   Vector{X: 1, Y: 1, Z: 1},
		visible: true,
	}

	if _, loaded := s.objects.LoadOrStore(name, obj); loaded {
		return nil, fmt.Errorf("object %q already exists", name)
	}

	s.objectMu.Lock()
	s.objectOrder = append(s.objectOrder, obj)
	s.objectMu.Unlock()

	return obj, nil
}

// Object looks an object up by name.
func (s *Scene) Object(name string) (*Object, bool) {
	return s.objects.Load(name)
}

// Objects returns all objects in registration order.
func (s *Scene) Objects() []*Object {
	s.objectMu.RLock()
	defer s.objectMu.RUnlock()
	out := make([]*Object, len(s.objectOrder))
	copy(out, s.objectOrder)
	return out
}

// DestroyObject removes an object by name.
func (s *Scene) DestroyObject(name string) error {
	if _, ok := s.objects.LoadAndDelete(name); !ok {
		return fmt.Errorf("object %q not found", name)
	}

	s.objectMu.Lock()
	for i, obj := range s.objectOrder {
		if obj.Name() == name {
			s.objectOrder = append(s.objectOrder[:i], s.objectOrder[i+1:]...)
			break
		}
	}
	s.objectMu.Unlock()

	return nil
}

// Pawn returns the player pawn.
func (s *Scene) Pawn() *Pawn {
	return &s.pawn
}

// ViewMode returns the active rendering mode.
func (s *Scene) ViewMode() string {
	return s.viewMode.Load().(string)
}

// SetViewMode switches the rendering mode. Unknown modes are rejected.
func (s *Scene) SetViewMode(mode string) error {
	for _, known := range ViewModes {
		if mode == known {
			s.viewMode.Store(mode)
			return nil
		}
	}
	return fmt.Errorf("unknown view mode %q", mode)
}
