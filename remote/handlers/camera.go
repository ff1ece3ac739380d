package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scenecv/scenecv/lib/scene"
	"github.com/scenecv/scenecv/remote/dispatch"
)

// CameraHandler implements the camera/sensor command surface.
type CameraHandler struct {
	scene *scene.Scene
}

// NewCameraHandler creates a camera handler bound to the given scene
func NewCameraHandler(s *scene.Scene) *CameraHandler {
	return &CameraHandler{scene: s}
}

// RegisterCommands binds all camera commands to the dispatcher
func (h *CameraHandler) RegisterCommands(d *dispatch.CommandDispatcher) error {
	bindings := []struct {
		pattern     string
		handler     dispatch.Handler
		description string
	}{
		{"vget /cameras", h.getCameraList, "List the names of all sensors"},
		{"vget /sensors", h.getCameraList, "List the names of all sensors"},
		{"vget /camera/[uint]/location", h.getLocation, "Get sensor location [x, y, z]"},
		{"vset /camera/[uint]/location [float] [float] [float]", h.setLocation, "Set sensor location [x, y, z]"},
		{"vget /camera/[uint]/rotation", h.getRotation, "Get sensor rotation [pitch, yaw, roll]"},
		{"vset /camera/[uint]/rotation [float] [float] [float]", h.setRotation, "Set sensor rotation [pitch, yaw, roll]"},
		{"vget /camera/[uint]/fov", h.getFOV, "Get sensor horizontal field of view"},
		{"vset /camera/[uint]/fov [float]", h.setFOV, "Set sensor horizontal field of view"},
		{"vset /camera/[uint]/size [uint] [uint]", h.setFilmSize, "Set sensor capture resolution [width, height]"},
		{"vget /camera/[uint]/lit [str]", h.capture, "Capture the sensor view, encoded as png or bmp"},
	}

	for _, b := range bindings {
		if err := d.RegisterCommand(b.pattern, b.handler, b.description); err != nil {
			return err
		}
	}
	return nil
}

// getCamera resolves the sensor referenced by the first argument
func (h *CameraHandler) getCamera(args []string) (*scene.Sensor, dispatch.ExecStatus) {
	if len(args) < 1 {
		return nil, dispatch.Error("no sensor id is available")
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, dispatch.InvalidArgument
	}

	sensor, ok := h.scene.Sensor(uint32(id))
	if !ok {
		return nil, dispatch.Error(fmt.Sprintf("invalid sensor id %s", args[0]))
	}
	return sensor, dispatch.OK("")
}

// vget /cameras
func (h *CameraHandler) getCameraList(_ []string) dispatch.ExecStatus {
	sensors := h.scene.Sensors()
	names := make([]string, 0, len(sensors))
	for _, sensor := range sensors {
		names = append(names, sensor.Name())
	}
	return dispatch.OK(strings.Join(names, " "))
}

// vget /camera/[uint]/location
func (h *CameraHandler) getLocation(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}
	return dispatch.OK(sensor.Location().String())
}

// vset /camera/[uint]/location [float] [float] [float]
func (h *CameraHandler) setLocation(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}

	location, ok := parseVector(args[1:])
	if !ok {
		return dispatch.InvalidArgument
	}

	// Camera 0 is the player's view: moving it teleports the pawn.
	if sensor.ID() == 0 {
		h.scene.Pawn().SetLocation(location)
	}
	sensor.SetLocation(location)
	return dispatch.OK("")
}

// vget /camera/[uint]/rotation
func (h *CameraHandler) getRotation(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}
	return dispatch.OK(sensor.Rotation().String())
}

// vset /camera/[uint]/rotation [float] [float] [float]
func (h *CameraHandler) setRotation(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}

	values, ok := parseFloats(args[1:], 3)
	if !ok {
		return dispatch.InvalidArgument
	}
	rotation := scene.Rotator{Pitch: values[0], Yaw: values[1], Roll: values[2]}

	if sensor.ID() == 0 {
		h.scene.Pawn().SetRotation(rotation)
	}
	sensor.SetRotation(rotation)
	return dispatch.OK("")
}

// vget /camera/[uint]/fov
func (h *CameraHandler) getFOV(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}
	return dispatch.OK(strconv.FormatFloat(sensor.FOV(), 'f', -1, 64))
}

// vset /camera/[uint]/fov [float]
func (h *CameraHandler) setFOV(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}

	fov, err := strconv.ParseFloat(args[1], 64)
	if err != nil || fov <= 0 || fov >= 180 {
		return dispatch.InvalidArgument
	}
	sensor.SetFOV(fov)
	return dispatch.OK("")
}

// vset /camera/[uint]/size [uint] [uint]
func (h *CameraHandler) setFilmSize(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}

	width, errW := strconv.Atoi(args[1])
	height, errH := strconv.Atoi(args[2])
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return dispatch.InvalidArgument
	}
	sensor.SetFilmSize(width, height)
	return dispatch.OK("")
}

// vget /camera/[uint]/lit [str]
func (h *CameraHandler) capture(args []string) dispatch.ExecStatus {
	sensor, status := h.getCamera(args)
	if sensor == nil {
		return status
	}

	data, err := encodeImage(sensor.Capture(), args[1])
	if err != nil {
		return dispatch.Error(err.Error())
	}
	return dispatch.OKBinary(data)
}

// --------------------------------------------------------------------------
// Argument helpers
// --------------------------------------------------------------------------

// parseFloats parses exactly count float tokens
func parseFloats(args []string, count int) ([]float64, bool) {
	if len(args) != count {
		return nil, false
	}
	values := make([]float64, count)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// parseVector parses three float tokens into a Vector
func parseVector(args []string) (scene.Vector, bool) {
	values, ok := parseFloats(args, 3)
	if !ok {
		return scene.Vector{}, false
	}
	return scene.Vector{X: values[0], Y: values[1], Z: values[2]}, true
}
