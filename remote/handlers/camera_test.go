package handlers

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/scenecv/scenecv/lib/scene"
	"github.com/scenecv/scenecv/remote/dispatch"
)

// newCameraDispatcher builds a scene with the given number of sensors and a
// dispatcher with the camera commands registered
func newCameraDispatcher(t *testing.T, sensors int) (*scene.Scene, *dispatch.CommandDispatcher) {
	t.Helper()

	s := scene.NewScene()
	for i := 0; i < sensors; i++ {
		s.AddSensor("CameraActor_" + string(rune('0'+i)))
	}

	d := dispatch.NewCommandDispatcher()
	if err := NewCameraHandler(s).RegisterCommands(d); err != nil {
		t.Fatalf("RegisterCommands() failed: %v", err)
	}
	return s, d
}

// TestGetCameraList tests "vget /cameras" with zero and with two sensors
func TestGetCameraList(t *testing.T) {
	_, empty := newCameraDispatcher(t, 0)
	if status := empty.Dispatch("vget /cameras"); status.Type != dispatch.StatusOK || status.Text != "" {
		t.Errorf("empty scene: status = %+v, want empty ok", status)
	}

	_, two := newCameraDispatcher(t, 2)
	status := two.Dispatch("vget /cameras")
	if status.Type != dispatch.StatusOK {
		t.Fatalf("status = %+v", status)
	}
	if status.Text != "CameraActor_0 CameraActor_1" {
		t.Errorf("camera list = %q", status.Text)
	}

	// /sensors is an alias
	if alias := two.Dispatch("vget /sensors"); alias.Text != status.Text {
		t.Errorf("/sensors = %q, want %q", alias.Text, status.Text)
	}
}

// TestCameraLocation tests the location set/get round trip
func TestCameraLocation(t *testing.T) {
	s, d := newCameraDispatcher(t, 2)

	if status := d.Dispatch("vset /camera/1/location 100 -200.5 300"); status.Type != dispatch.StatusOK {
		t.Fatalf("set failed: %+v", status)
	}

	status := d.Dispatch("vget /camera/1/location")
	if status.Type != dispatch.StatusOK || status.Text != "100 -200.5 300" {
		t.Errorf("location = %+v, want 100 -200.5 300", status)
	}

	// Camera 1 is not the player's view; the pawn stays put.
	if loc := s.Pawn().Location(); loc != (scene.Vector{}) {
		t.Errorf("pawn moved to %v", loc)
	}
}

// TestCameraZeroMovesPawn tests that moving camera 0 teleports the pawn
func TestCameraZeroMovesPawn(t *testing.T) {
	s, d := newCameraDispatcher(t, 1)

	if status := d.Dispatch("vset /camera/0/location 10 20 30"); status.Type != dispatch.StatusOK {
		t.Fatalf("set location failed: %+v", status)
	}
	if status := d.Dispatch("vset /camera/0/rotation 0 90 0"); status.Type != dispatch.StatusOK {
		t.Fatalf("set rotation failed: %+v", status)
	}

	if loc := s.Pawn().Location(); loc != (scene.Vector{X: 10, Y: 20, Z: 30}) {
		t.Errorf("pawn location = %v", loc)
	}
	if rot := s.Pawn().Rotation(); rot != (scene.Rotator{Yaw: 90}) {
		t.Errorf("pawn rotation = %v", rot)
	}
}

// TestCameraFOV tests fov set/get and bounds validation
func TestCameraFOV(t *testing.T) {
	_, d := newCameraDispatcher(t, 1)

	if status := d.Dispatch("vget /camera/0/fov"); status.Text != "90" {
		t.Errorf("default fov = %q, want 90", status.Text)
	}

	if status := d.Dispatch("vset /camera/0/fov 120.5"); status.Type != dispatch.StatusOK {
		t.Fatalf("set failed: %+v", status)
	}
	if status := d.Dispatch("vget /camera/0/fov"); status.Text != "120.5" {
		t.Errorf("fov = %q, want 120.5", status.Text)
	}

	for _, bad := range []string{"0", "180", "360"} {
		if status := d.Dispatch("vset /camera/0/fov " + bad); status.Type != dispatch.StatusInvalidArgument {
			t.Errorf("fov %s: status = %+v, want invalid argument", bad, status)
		}
	}
}

// TestCameraUnknownID tests the lookup failure path
func TestCameraUnknownID(t *testing.T) {
	_, d := newCameraDispatcher(t, 1)

	status := d.Dispatch("vget /camera/7/location")
	if status.Type != dispatch.StatusError {
		t.Fatalf("status = %+v, want error", status)
	}
	if !strings.Contains(status.Text, "7") {
		t.Errorf("error text %q should name the sensor id", status.Text)
	}
}

// TestCameraCapture tests the binary capture path for both encodings
func TestCameraCapture(t *testing.T) {
	_, d := newCameraDispatcher(t, 1)

	if status := d.Dispatch("vset /camera/0/size 64 32"); status.Type != dispatch.StatusOK {
		t.Fatalf("set size failed: %+v", status)
	}

	t.Run("png", func(t *testing.T) {
		status := d.Dispatch("vget /camera/0/lit png")
		if status.Type != dispatch.StatusOKBinary {
			t.Fatalf("status = %+v, want binary", status)
		}
		img, err := png.Decode(bytes.NewReader(status.Binary))
		if err != nil {
			t.Fatalf("response is not a png: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
			t.Errorf("image size = %dx%d, want 64x32", b.Dx(), b.Dy())
		}
	})

	t.Run("bmp", func(t *testing.T) {
		status := d.Dispatch("vget /camera/0/lit bmp")
		if status.Type != dispatch.StatusOKBinary {
			t.Fatalf("status = %+v, want binary", status)
		}
		if _, err := bmp.Decode(bytes.NewReader(status.Binary)); err != nil {
			t.Fatalf("response is not a bmp: %v", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if status := d.Dispatch("vget /camera/0/lit tiff"); status.Type != dispatch.StatusError {
			t.Errorf("status = %+v, want error", status)
		}
	})
}
