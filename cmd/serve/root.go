package serve

import (
	"fmt"

	cmdUtil "github.com/scenecv/scenecv/cmd/util"
	"github.com/scenecv/scenecv/lib/scene"
	"github.com/scenecv/scenecv/remote/common"
	"github.com/scenecv/scenecv/remote/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the scenecv command server",
		Long:    `Start the scenecv command server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is SCENECV_<flag> (e.g. SCENECV_ENDPOINT=0.0.0.0:9000)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	key := "endpoint"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0:9000", cmdUtil.WrapString("The address on which the command server will listen (host:port for tcp, socket path for unix)"))

	key = "poll-interval"
	ServeCmd.PersistentFlags().Int(key, 250, cmdUtil.WrapString("How long a connection read blocks (in milliseconds) before the stop flag is rechecked. 0 blocks indefinitely"))

	key = "metrics-endpoint"
	ServeCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("The address of the Prometheus metrics HTTP listener (e.g. 127.0.0.1:9100, empty = disabled)"))

	key = "sensors"
	ServeCmd.PersistentFlags().Int(key, 1, cmdUtil.WrapString("Number of sensors to register in the scene at startup"))

	key = "write-buffer"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The size of the socket write buffer in KB (0 = OS default)"))

	key = "read-buffer"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The size of the socket read buffer in KB (0 = OS default)"))

	key = "tcp-nodelay"
	ServeCmd.PersistentFlags().Bool(key, true, cmdUtil.WrapString("Whether to enable TCP_NODELAY for accepted connections (tcp transport only)"))

	key = "tcp-keepalive"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The keepalive interval in seconds for accepted connections (tcp transport only, 0 = disabled)"))

	key = "tcp-linger"
	ServeCmd.PersistentFlags().Int(key, -1, cmdUtil.WrapString("The linger time in seconds for accepted connections (tcp transport only, negative = OS default). Linger 0 resets the connection on close, which peers see as an abort instead of a graceful close"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}

	serveCmdConfig.Endpoint = viper.GetString("endpoint")
	serveCmdConfig.PollIntervalMillis = viper.GetInt("poll-interval")
	serveCmdConfig.MetricsEndpoint = viper.GetString("metrics-endpoint")
	serveCmdConfig.LogLevel = viper.GetString("log-level")
	serveCmdConfig.Socket = common.SocketConf{
		WriteBufferSize: viper.GetInt("write-buffer") * 1024,
		ReadBufferSize:  viper.GetInt("read-buffer") * 1024,
	}
	serveCmdConfig.TCP = common.TCPConf{
		TCPNoDelay:      viper.GetBool("tcp-nodelay"),
		TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
		TCPLingerSec:    viper.GetInt("tcp-linger"),
	}

	if serveCmdConfig.PollIntervalMillis < 0 {
		return fmt.Errorf("poll-interval must be >= 0")
	}
	if viper.GetInt("sensors") < 0 {
		return fmt.Errorf("sensors must be >= 0")
	}

	// validate the log level early, before the server is constructed
	if _, err := common.ParseLogLevel(serveCmdConfig.LogLevel); err != nil {
		return err
	}

	return nil
}

// run starts the scenecv server
func run(_ *cobra.Command, _ []string) error {
	// Parse the transport
	t, err := cmdUtil.GetServerTransport()
	if err != nil {
		return err
	}

	// Populate the scene
	sc := scene.NewScene()
	for i := 0; i < viper.GetInt("sensors"); i++ {
		sc.AddSensor(fmt.Sprintf("FusionCameraActor_%d", i+1))
	}

	serv, err := server.NewCommandServer(*serveCmdConfig, t, sc)
	if err != nil {
		return err
	}

	return serv.Serve()
}
