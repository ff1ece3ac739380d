package server

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/scenecv/scenecv/lib/scene"
	"github.com/scenecv/scenecv/remote/common"
	"github.com/scenecv/scenecv/remote/dispatch"
	"github.com/scenecv/scenecv/remote/handlers"
	"github.com/scenecv/scenecv/remote/transport"
)

var Logger = common.GetLogger("server")

// Version of the scenecv server, reported by "vget /server/version".
const Version = "0.3.1"

// CommandServer ties the framed transport, the command dispatcher and the
// scene together: every frame received on a connection is dispatched as one
// command and answered with exactly one response frame.
type CommandServer struct {
	config     common.ServerConfig
	transport  transport.IServerTransport
	dispatcher *dispatch.CommandDispatcher
	scene      *scene.Scene
	started    time.Time
}

// NewCommandServer creates a command server for the given scene
//
// Usage:
//
//	s, err := server.NewCommandServer(
//		*config,
//		tcp.NewTCPServerTransport(),
//		scene.NewScene(),
//	)
//	if err != nil {
//		panic(err)
//	}
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewCommandServer(
	config common.ServerConfig,
	serverTransport transport.IServerTransport,
	sc *scene.Scene,
) (*CommandServer, error) {
	s := &CommandServer{
		config:     config,
		transport:  serverTransport,
		dispatcher: dispatch.NewCommandDispatcher(),
		scene:      sc,
	}

	// The command table is built once here, before any connection is
	// accepted; it is read-only for the lifetime of the server.
	if err := s.registerCommands(); err != nil {
		return nil, fmt.Errorf("failed to register commands: %v", err)
	}
	s.registerTransportHandler()

	Logger.Infof("Created command server")
	Logger.Infof(config.String())

	return s, nil
}

// Dispatcher exposes the command table, e.g. for additional registrations
// before Serve is called.
func (s *CommandServer) Dispatcher() *dispatch.CommandDispatcher {
	return s.dispatcher
}

// Serve initializes logging and metrics and starts the transport. It blocks
// until Stop is called or the listener fails.
func (s *CommandServer) Serve() error {
	if err := common.InitLoggers(s.config); err != nil {
		return err
	}

	if s.config.MetricsEndpoint != "" {
		go s.serveMetrics()
	}

	s.started = time.Now()
	return s.transport.Listen(s.config)
}

// Stop tears down the transport and all active connections.
func (s *CommandServer) Stop() error {
	return s.transport.Stop()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// registerTransportHandler connects received frames to the dispatcher
func (s *CommandServer) registerTransportHandler() {
	s.transport.RegisterHandler(func(endpoint string, message string) []byte {
		start := time.Now()
		status := s.dispatcher.Dispatch(message)
		Logger.Debugf("Dispatched %q from %s -> %s in %s", message, endpoint, status.Type, time.Since(start))
		return status.Payload()
	})
}

// registerCommands builds the command table
func (s *CommandServer) registerCommands() error {
	if err := handlers.NewCameraHandler(s.scene).RegisterCommands(s.dispatcher); err != nil {
		return err
	}
	if err := handlers.NewObjectHandler(s.scene).RegisterCommands(s.dispatcher); err != nil {
		return err
	}
	if err := handlers.NewViewModeHandler(s.scene).RegisterCommands(s.dispatcher); err != nil {
		return err
	}

	// Introspection commands live here because they need the dispatcher and
	// the server itself.
	if err := s.dispatcher.RegisterCommand("vget /server/version", s.getVersion, "Get the server version"); err != nil {
		return err
	}
	if err := s.dispatcher.RegisterCommand("vget /server/status", s.getStatus, "Get the server status"); err != nil {
		return err
	}
	return s.dispatcher.RegisterCommand("vget /server/help", s.getHelp, "List all registered commands")
}

// vget /server/version
func (s *CommandServer) getVersion(_ []string) dispatch.ExecStatus {
	return dispatch.OK(Version)
}

// vget /server/status
func (s *CommandServer) getStatus(_ []string) dispatch.ExecStatus {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("scenecv v%s\n", Version))
	sb.WriteString(fmt.Sprintf("uptime: %s\n", time.Since(s.started).Round(time.Second)))
	sb.WriteString(fmt.Sprintf("sensors: %d\n", len(s.scene.Sensors())))
	sb.WriteString(fmt.Sprintf("objects: %d\n", len(s.scene.Objects())))
	sb.WriteString(fmt.Sprintf("viewmode: %s\n", s.scene.ViewMode()))
	sb.WriteString(fmt.Sprintf("goroutines: %d", runtime.NumGoroutine()))
	return dispatch.OK(sb.String())
}

// vget /server/help
func (s *CommandServer) getHelp(_ []string) dispatch.ExecStatus {
	var sb strings.Builder
	for _, info := range s.dispatcher.Commands() {
		sb.WriteString(fmt.Sprintf("%-55s %s\n", info.Pattern, info.Description))
	}
	return dispatch.OK(strings.TrimRight(sb.String(), "\n"))
}

// serveMetrics exposes Prometheus metrics on a side HTTP listener
func (s *CommandServer) serveMetrics() {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		metrics.WritePrometheus(w, true)
	})

	Logger.Infof("Starting metrics server on %s", s.config.MetricsEndpoint)
	Logger.Errorf("Metrics server stopped: %v", http.ListenAndServe(s.config.MetricsEndpoint, mux))
}
