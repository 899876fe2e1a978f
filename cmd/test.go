package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Singh-Gursimar/HandGestureHID/internal/config"
	"github.com/Singh-Gursimar/HandGestureHID/internal/logger"
	"github.com/Singh-Gursimar/HandGestureHID/internal/uinput"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Create both virtual devices and play a short demo pattern",
	Long: `Create the virtual mouse and gamepad, trace a square with the cursor,
click, tap a gamepad button and sweep the stick, then tear everything
down. Useful for verifying permissions and for watching the devices
appear in tools like libinput debug-events or evtest.`,
	RunE: runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.Get()

	factory := uinput.NewFactory()

	mouse, gamepad, err := uinput.NewDevicePair(factory,
		cfg.Devices.MouseName, cfg.Devices.GamepadName,
		cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return err
	}
	defer mouse.Close()
	defer gamepad.Close()

	logger.Info("devices created, playing demo pattern")

	// Give listeners (compositor, evtest) a moment to pick the devices up.
	time.Sleep(500 * time.Millisecond)

	square := [][2]int32{{200, 200}, {600, 200}, {600, 600}, {200, 600}, {200, 200}}
	for _, p := range square {
		if err := mouse.MoveAbsolute(p[0], p[1]); err != nil {
			return err
		}
		time.Sleep(150 * time.Millisecond)
	}
	if err := mouse.Click(uinput.MouseLeft); err != nil {
		return err
	}
	if err := mouse.Scroll(1); err != nil {
		return err
	}

	if err := gamepad.SetButton(uinput.ButtonA, true); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	if err := gamepad.SetButton(uinput.ButtonA, false); err != nil {
		return err
	}
	for _, x := range []int32{-32767, 0, 32767, 0} {
		if err := gamepad.SetStick(x, 0); err != nil {
			return err
		}
		time.Sleep(100 * time.Millisecond)
	}

	logger.Info("demo pattern complete, tearing down")
	return nil
}
