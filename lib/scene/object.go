package scene

import "sync"

// Object is a named actor in the scene.
type Object struct {
	name string

	mu       sync.RWMutex
	location Vector
	rotation Rotator
	scale    Vector
	color    Color
	visible  bool
}

// Name returns the object name used in command paths like /object/[str]/location.
func (o *Object) Name() string { return o.name }

// Location returns the object location.
func (o *Object) Location() Vector {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.location
}

// SetLocation moves the object.
func (o *Object) SetLocation(v Vector) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.location = v
}

// Rotation returns the object orientation.
func (o *Object) Rotation() Rotator {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.rotation
}

// SetRotation orients the object.
func (o *Object) SetRotation(r Rotator) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rotation = r
}

// Scale returns the object scale.
func (o *Object) Scale() Vector {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.scale
}

// SetScale resizes the object.
func (o *Object) SetScale(v Vector) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.scale = v
}

// Color returns the annotation color of the object (used in instance masks).
func (o *Object) Color() Color {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.color
}

// SetColor sets the annotation color of the object.
func (o *Object) SetColor(c Color) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.color = c
}

// Visible reports whether the object is shown.
func (o *Object) Visible() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.visible
}

// SetVisible shows or hides the object.
func (o *Object) SetVisible(visible bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = visible
}
