package dispatch

import (
	"fmt"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/scenecv/scenecv/remote/common"
)

var Logger = common.GetLogger("dispatch")

var (
	metricCommandsOK    = metrics.GetOrCreateCounter("scenecv_commands_total{result=\"ok\"}")
	metricCommandsError = metrics.GetOrCreateCounter("scenecv_commands_total{result=\"error\"}")
)

// --------------------------------------------------------------------------
// Handler and table types
// --------------------------------------------------------------------------

// Handler is a collaborator-supplied function bound to a command pattern.
// It receives the extracted argument tokens (already validated in kind, in
// pattern order) and must always produce an ExecStatus - a failing handler
// reports through ExecStatus.Error or InvalidArgument, never by panicking.
type Handler func(args []string) ExecStatus

// tableEntry pairs one pattern with its handler
type tableEntry struct {
	pattern *CommandPattern
	handler Handler
}

// CommandInfo describes one registered command for help listings.
type CommandInfo struct {
	Pattern     string
	Description string
}

// --------------------------------------------------------------------------
// CommandDispatcher
// --------------------------------------------------------------------------

// CommandDispatcher routes command lines to handlers via an ordered pattern
// table. Insertion order is match priority: the first registered pattern that
// matches wins, later patterns are not considered. The table is built once at
// startup and is read-only during dispatch, so no locking is needed on the
// dispatch path.
type CommandDispatcher struct {
	table []tableEntry
}

// NewCommandDispatcher creates an empty dispatcher
//
// Usage:
//
//	d := dispatch.NewCommandDispatcher()
//	d.RegisterCommand("vget /cameras", listCameras, "List all cameras")
//	status := d.Dispatch("vget /cameras")
func NewCommandDispatcher() *CommandDispatcher {
	return &CommandDispatcher{}
}

// RegisterCommand parses patternText and appends the pattern with its handler
// to the table. Registration is not safe for concurrent use with Dispatch;
// register everything before serving.
//
// No de-duplication is performed, but a pattern that is provably shadowed by
// an earlier registration (every line it matches is already claimed) is
// logged as a warning, since it can never be reached.
func (d *CommandDispatcher) RegisterCommand(patternText string, handler Handler, description string) error {
	if handler == nil {
		return fmt.Errorf("nil handler for pattern %q", patternText)
	}

	pattern, err := ParsePattern(patternText, description)
	if err != nil {
		return err
	}

	for _, entry := range d.table {
		if entry.pattern.shadows(pattern) {
			Logger.Warningf("Pattern %q is shadowed by earlier pattern %q and will never match",
				patternText, entry.pattern.Raw())
			break
		}
	}

	d.table = append(d.table, tableEntry{pattern: pattern, handler: handler})
	Logger.Debugf("Registered command %q", patternText)
	return nil
}

// Dispatch matches commandLine against the table in registration order and
// invokes the first matching handler. An unroutable command never drops
// silently - it always yields an error status naming the offending text.
func (d *CommandDispatcher) Dispatch(commandLine string) ExecStatus {
	tokens := strings.Fields(commandLine)
	if len(tokens) == 0 {
		metricCommandsError.Inc()
		return Error("empty command")
	}

	for _, entry := range d.table {
		args, ok := entry.pattern.Match(tokens)
		if !ok {
			continue
		}

		status := entry.handler(args)
		if status.Type == StatusOK || status.Type == StatusOKBinary {
			metricCommandsOK.Inc()
		} else {
			metricCommandsError.Inc()
		}
		return status
	}

	metricCommandsError.Inc()
	return Error(fmt.Sprintf("can not find a handler for command '%s'", commandLine))
}

// Commands lists all registered patterns with their descriptions, in
// registration order.
func (d *CommandDispatcher) Commands() []CommandInfo {
	infos := make([]CommandInfo, 0, len(d.table))
	for _, entry := range d.table {
		infos = append(infos, CommandInfo{
			Pattern:     entry.pattern.Raw(),
			Description: entry.pattern.Description(),
		})
	}
	return infos
}
