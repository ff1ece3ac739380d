package scene

import (
	"testing"
)

// TestSensorRegistration tests id assignment and enumeration order
func TestSensorRegistration(t *testing.T) {
	s := NewScene()

	if got := s.Sensors(); len(got) != 0 {
		t.Fatalf("new scene has %d sensors, want 0", len(got))
	}

	first := s.AddSensor("CameraActor_0")
	second := s.AddSensor("CameraActor_1")

	if first.ID() != 0 || second.ID() != 1 {
		t.Errorf("sensor ids = %d, %d, want 0, 1", first.ID(), second.ID())
	}

	sensors := s.Sensors()
	if len(sensors) != 2 || sensors[0] != first || sensors[1] != second {
		t.Errorf("Sensors() not in registration order: %v", sensors)
	}

	if got, ok := s.Sensor(1); !ok || got != second {
		t.Errorf("Sensor(1) = %v, %v", got, ok)
	}
	if _, ok := s.Sensor(5); ok {
		t.Error("Sensor(5) should not exist")
	}
}

// TestSensorDefaults tests the initial sensor parameters
func TestSensorDefaults(t *testing.T) {
	s := NewScene()
	sensor := s.AddSensor("CameraActor_0")

	if w, h := sensor.FilmSize(); w != 640 || h != 480 {
		t.Errorf("film size = %dx%d, want 640x480", w, h)
	}
	if fov := sensor.FOV(); fov != 90 {
		t.Errorf("fov = %v, want 90", fov)
	}
	if loc := sensor.Location(); loc != (Vector{}) {
		t.Errorf("location = %v, want origin", loc)
	}
}

// TestObjectLifecycle tests spawn, lookup, uniqueness and destruction
func TestObjectLifecycle(t *testing.T) {
	s := NewScene()

	cube, err := s.SpawnObject("Cube_1")
	if err != nil {
		t.Fatalf("SpawnObject() failed: %v", err)
	}
	if _, err := s.SpawnObject("Sphere_1"); err != nil {
		t.Fatalf("SpawnObject() failed: %v", err)
	}

	if _, err := s.SpawnObject("Cube_1"); err == nil {
		t.Error("duplicate object name should be rejected")
	}

	if !cube.Visible() {
		t.Error("objects spawn visible")
	}
	if scale := cube.Scale(); scale != (Vector{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale = %v, want unit scale", scale)
	}

	objects := s.Objects()
	if len(objects) != 2 || objects[0].Name() != "Cube_1" || objects[1].Name() != "Sphere_1" {
		t.Errorf("Objects() not in registration order: %v", objects)
	}

	if err := s.DestroyObject("Cube_1"); err != nil {
		t.Fatalf("DestroyObject() failed: %v", err)
	}
	if _, ok := s.Object("Cube_1"); ok {
		t.Error("destroyed object still present")
	}
	if got := s.Objects(); len(got) != 1 || got[0].Name() != "Sphere_1" {
		t.Errorf("Objects() after destroy = %v", got)
	}

	if err := s.DestroyObject("Cube_1"); err == nil {
		t.Error("destroying a missing object should fail")
	}
}

// TestViewMode tests mode switching and validation
func TestViewMode(t *testing.T) {
	s := NewScene()

	if got := s.ViewMode(); got != "lit" {
		t.Fatalf("initial view mode = %q, want lit", got)
	}

	for _, mode := range ViewModes {
		if err := s.SetViewMode(mode); err != nil {
			t.Errorf("SetViewMode(%q) failed: %v", mode, err)
		}
		if got := s.ViewMode(); got != mode {
			t.Errorf("ViewMode() = %q, want %q", got, mode)
		}
	}

	if err := s.SetViewMode("cartoon"); err == nil {
		t.Error("unknown view mode should be rejected")
	}
	if got := s.ViewMode(); got != ViewModes[len(ViewModes)-1] {
		t.Errorf("failed switch must not change the mode, got %q", got)
	}
}

// TestVectorFormatting tests the space-separated text form of the value types
func TestVectorFormatting(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "vector", got: Vector{X: 10.5, Y: -20, Z: 0}.String(), want: "10.5 -20 0"},
		{name: "rotator", got: Rotator{Pitch: 0, Yaw: 90, Roll: -45.25}.String(), want: "0 90 -45.25"},
		{name: "color", got: Color{R: 255, G: 128, B: 0}.String(), want: "255 128 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// TestSensorCaptureDeterminism tests that a sensor renders a stable image of
// the configured film size
func TestSensorCaptureDeterminism(t *testing.T) {
	s := NewScene()
	sensor := s.AddSensor("CameraActor_0")
	sensor.SetFilmSize(32, 16)

	first := sensor.Capture()
	second := sensor.Capture()

	bounds := first.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 16 {
		t.Fatalf("capture size = %dx%d, want 32x16", bounds.Dx(), bounds.Dy())
	}
	if second.Bounds() != bounds {
		t.Fatalf("capture bounds changed between calls")
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if first.At(x, y) != second.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs between captures", x, y)
			}
		}
	}
}
