package scene

import (
	"image"
	"image/color"
	"sync"
)

// Default film size of a newly added sensor
const (
	defaultFilmWidth  = 640
	defaultFilmHeight = 480
	defaultFOV        = 90.0
)

// Sensor is one camera-like sensor in the scene. All accessors are safe for
// concurrent use; command handlers for different connections may touch the
// same sensor.
type Sensor struct {
	id   uint32
	name string

	mu         sync.RWMutex
	location   Vector
	rotation   Rotator
	fov        float64
	filmWidth  int
	filmHeight int
}

// ID returns the sensor id used in command paths like /camera/[uint]/location.
func (s *Sensor) ID() uint32 { return s.id }

// Name returns the sensor name as listed by "vget /cameras".
func (s *Sensor) Name() string { return s.name }

// Location returns the sensor location.
func (s *Sensor) Location() Vector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// SetLocation moves the sensor.
func (s *Sensor) SetLocation(v Vector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = v
}

// Rotation returns the sensor orientation.
func (s *Sensor) Rotation() Rotator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rotation
}

// SetRotation orients the sensor.
func (s *Sensor) SetRotation(r Rotator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotation = r
}

// FOV returns the horizontal field of view in degrees.
func (s *Sensor) FOV() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fov
}

// SetFOV sets the horizontal field of view in degrees.
func (s *Sensor) SetFOV(fov float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fov = fov
}

// FilmSize returns the capture resolution.
func (s *Sensor) FilmSize() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filmWidth, s.filmHeight
}

// SetFilmSize sets the capture resolution.
func (s *Sensor) SetFilmSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filmWidth = width
	s.filmHeight = height
}

// Capture renders the sensor's current view. The host rendering engine is an
// external collaborator, so this produces a deterministic synthetic image: a
// gradient tagged with the sensor id, good enough for clients and tests to
// verify the binary response path end to end.
func (s *Sensor) Capture() image.Image {
	s.mu.RLock()
	width, height, id := s.filmWidth, s.filmHeight, s.id
	s.mu.RUnlock()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8(id * 37),
				A: 255,
			})
		}
	}
	return img
}
