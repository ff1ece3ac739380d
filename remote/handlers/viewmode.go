package handlers

import (
	"github.com/scenecv/scenecv/lib/scene"
	"github.com/scenecv/scenecv/remote/dispatch"
)

// ViewModeHandler implements the rendering-mode command surface.
type ViewModeHandler struct {
	scene *scene.Scene
}

// NewViewModeHandler creates a view mode handler bound to the given scene
func NewViewModeHandler(s *scene.Scene) *ViewModeHandler {
	return &ViewModeHandler{scene: s}
}

// RegisterCommands binds the view mode commands to the dispatcher
func (h *ViewModeHandler) RegisterCommands(d *dispatch.CommandDispatcher) error {
	if err := d.RegisterCommand("vget /viewmode", h.getViewMode, "Get the current rendering mode"); err != nil {
		return err
	}
	return d.RegisterCommand("vset /viewmode [str]", h.setViewMode, "Set the rendering mode (lit, normal, depth, object_mask, wireframe)")
}

// vget /viewmode
func (h *ViewModeHandler) getViewMode(_ []string) dispatch.ExecStatus {
	return dispatch.OK(h.scene.ViewMode())
}

// vset /viewmode [str]
func (h *ViewModeHandler) setViewMode(args []string) dispatch.ExecStatus {
	if err := h.scene.SetViewMode(args[0]); err != nil {
		return dispatch.Error(err.Error())
	}
	return dispatch.OK("")
}
