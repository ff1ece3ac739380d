package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scenecv/scenecv/lib/scene"
	"github.com/scenecv/scenecv/remote/dispatch"
)

// ObjectHandler implements the object command surface.
type ObjectHandler struct {
	scene *scene.Scene
}

// NewObjectHandler creates an object handler bound to the given scene
func NewObjectHandler(s *scene.Scene) *ObjectHandler {
	return &ObjectHandler{scene: s}
}

// RegisterCommands binds all object commands to the dispatcher
func (h *ObjectHandler) RegisterCommands(d *dispatch.CommandDispatcher) error {
	bindings := []struct {
		pattern     string
		handler     dispatch.Handler
		description string
	}{
		{"vget /objects", h.getObjectList, "Get the name of all objects"},
		{"vset /objects/spawn [str]", h.spawn, "Spawn an object with the given name"},
		{"vget /object/[str]/location", h.getLocation, "Get object location [x, y, z]"},
		{"vset /object/[str]/location [float] [float] [float]", h.setLocation, "Set object location [x, y, z]"},
		{"vget /object/[str]/rotation", h.getRotation, "Get object rotation [pitch, yaw, roll]"},
		{"vset /object/[str]/rotation [float] [float] [float]", h.setRotation, "Set object rotation [pitch, yaw, roll]"},
		{"vget /object/[str]/scale", h.getScale, "Get object scale [x, y, z]"},
		{"vset /object/[str]/scale [float] [float] [float]", h.setScale, "Set object scale [x, y, z]"},
		{"vget /object/[str]/color", h.getColor, "Get the labeling color of an object"},
		{"vset /object/[str]/color [uint] [uint] [uint]", h.setColor, "Set the labeling color of an object [r, g, b]"},
		{"vset /object/[str]/show", h.show, "Show object"},
		{"vset /object/[str]/hide", h.hide, "Hide object"},
		{"vset /object/[str]/destroy", h.destroy, "Destroy object"},
	}

	for _, b := range bindings {
		if err := d.RegisterCommand(b.pattern, b.handler, b.description); err != nil {
			return err
		}
	}
	return nil
}

// getObject resolves the object referenced by the first argument
func (h *ObjectHandler) getObject(args []string) (*scene.Object, dispatch.ExecStatus) {
	if len(args) < 1 {
		return nil, dispatch.Error("no object name is available")
	}

	obj, ok := h.scene.Object(args[0])
	if !ok {
		return nil, dispatch.Error(fmt.Sprintf("object %q not found", args[0]))
	}
	return obj, dispatch.OK("")
}

// vget /objects
func (h *ObjectHandler) getObjectList(_ []string) dispatch.ExecStatus {
	objects := h.scene.Objects()
	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.Name())
	}
	return dispatch.OK(strings.Join(names, " "))
}

// vset /objects/spawn [str]
func (h *ObjectHandler) spawn(args []string) dispatch.ExecStatus {
	if _, err := h.scene.SpawnObject(args[0]); err != nil {
		return dispatch.Error(err.Error())
	}
	return dispatch.OK("")
}

// vget /object/[str]/location
func (h *ObjectHandler) getLocation(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}
	return dispatch.OK(obj.Location().String())
}

// vset /object/[str]/location [float] [float] [float]
func (h *ObjectHandler) setLocation(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}

	location, ok := parseVector(args[1:])
	if !ok {
		return dispatch.InvalidArgument
	}
	obj.SetLocation(location)
	return dispatch.OK("")
}

// vget /object/[str]/rotation
func (h *ObjectHandler) getRotation(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}
	return dispatch.OK(obj.Rotation().String())
}

// vset /object/[str]/rotation [float] [float] [float]
func (h *ObjectHandler) setRotation(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}

	values, ok := parseFloats(args[1:], 3)
	if !ok {
		return dispatch.InvalidArgument
	}
	obj.SetRotation(scene.Rotator{Pitch: values[0], Yaw: values[1], Roll: values[2]})
	return dispatch.OK("")
}

// vget /object/[str]/scale
func (h *ObjectHandler) getScale(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}
	return dispatch.OK(obj.Scale().String())
}

// vset /object/[str]/scale [float] [float] [float]
func (h *ObjectHandler) setScale(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}

	sc, ok := parseVector(args[1:])
	if !ok {
		return dispatch.InvalidArgument
	}
	obj.SetScale(sc)
	return dispatch.OK("")
}

// vget /object/[str]/color
func (h *ObjectHandler) getColor(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}
	return dispatch.OK(obj.Color().String())
}

// vset /object/[str]/color [uint] [uint] [uint]
func (h *ObjectHandler) setColor(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}

	channels := make([]uint8, 3)
	for i, arg := range args[1:] {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return dispatch.InvalidArgument
		}
		channels[i] = uint8(v)
	}
	obj.SetColor(scene.Color{R: channels[0], G: channels[1], B: channels[2]})
	return dispatch.OK("")
}

// vset /object/[str]/show
func (h *ObjectHandler) show(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}
	obj.SetVisible(true)
	return dispatch.OK("")
}

// vset /object/[str]/hide
func (h *ObjectHandler) hide(args []string) dispatch.ExecStatus {
	obj, status := h.getObject(args)
	if obj == nil {
		return status
	}
	obj.SetVisible(false)
	return dispatch.OK("")
}

// vset /object/[str]/destroy
func (h *ObjectHandler) destroy(args []string) dispatch.ExecStatus {
	if err := h.scene.DestroyObject(args[0]); err != nil {
		return dispatch.Error(err.Error())
	}
	return dispatch.OK("")
}
