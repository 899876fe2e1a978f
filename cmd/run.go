package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Singh-Gursimar/HandGestureHID/internal/config"
	"github.com/Singh-Gursimar/HandGestureHID/internal/dispatch"
	"github.com/Singh-Gursimar/HandGestureHID/internal/logger"
	"github.com/Singh-Gursimar/HandGestureHID/internal/uinput"
)

var (
	screenWidth  int32
	screenHeight int32
)

var runCmd = &cobra.Command{
	Use:   "run [width] [height]",
	Short: "Create the virtual devices and drive them from stdin",
	Long: `Create the virtual mouse and gamepad, then read protocol commands from
stdin until QUIT, end of input or a termination signal. The optional
positional arguments bound the mouse's absolute axes in pixels and
default to 1920 1080.

Typical use is at the end of a pipeline:

  gesture-pipeline | gesturehid run 1920 1080`,
	Args: cobra.MaximumNArgs(2),
	RunE: runDriver,
}

func init() {
	runCmd.Flags().Int32VarP(&screenWidth, "width", "W", 0, "Screen width in pixels")
	runCmd.Flags().Int32VarP(&screenHeight, "height", "H", 0, "Screen height in pixels")

	// Bind flags to viper
	viper.BindPFlag("screen.width", runCmd.Flags().Lookup("width"))
	viper.BindPFlag("screen.height", runCmd.Flags().Lookup("height"))
}

func runDriver(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.Get()
	if cfg.Logging.LogLevel != "" {
		logger.SetLevel(cfg.Logging.LogLevel)
	}

	width, height := cfg.Screen.Width, cfg.Screen.Height
	if screenWidth > 0 {
		width = screenWidth
	}
	if screenHeight > 0 {
		height = screenHeight
	}

	// Positional arguments take precedence over flags and config.
	width, height, err := parseScreenArgs(args, width, height)
	if err != nil {
		return err
	}

	factory := uinput.NewFactory()

	mouse, gamepad, err := uinput.NewDevicePair(factory, cfg.Devices.MouseName, cfg.Devices.GamepadName, width, height)
	if err != nil {
		return err
	}
	logger.Info("virtual devices created",
		"mouse", cfg.Devices.MouseName,
		"gamepad", cfg.Devices.GamepadName,
		"screen", fmt.Sprintf("%dx%d", width, height))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	d := dispatch.New(mouse, gamepad, os.Stdin)
	defer d.Close()

	logger.Info("ready, listening on stdin")
	if err := d.Run(ctx); err != nil {
		return err
	}
	logger.Info("exited cleanly")
	return nil
}

// parseScreenArgs applies the optional positional screen bounds over the
// configured defaults. Either both are given or neither.
func parseScreenArgs(args []string, width, height int32) (int32, int32, error) {
	if len(args) == 0 {
		return width, height, nil
	}
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("screen bounds need both width and height, got %d argument(s)", len(args))
	}
	w, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid screen width %q", args[0])
	}
	h, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid screen height %q", args[1])
	}
	return int32(w), int32(h), nil
}
