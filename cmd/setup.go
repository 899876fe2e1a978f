package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/sys/unix"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Check uinput availability and permissions",
	Long: `Check that the uinput kernel module is loaded and that this user can
create virtual devices, and print setup instructions if not.`,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println("Checking uinput support...")
	fmt.Println()

	node := "/dev/uinput"
	if _, err := os.Stat(node); os.IsNotExist(err) {
		if _, err := os.Stat("/dev/input/uinput"); err == nil {
			node = "/dev/input/uinput"
		} else {
			fmt.Println("✗ No uinput device node found")
			fmt.Println()
			fmt.Println("  The uinput kernel module is not loaded. Load it with:")
			fmt.Println("      sudo modprobe uinput")
			fmt.Println()
			fmt.Println("  To load it on every boot:")
			fmt.Println("      echo uinput | sudo tee /etc/modules-load.d/uinput.conf")
			return fmt.Errorf("uinput module not loaded")
		}
	}
	fmt.Printf("✓ Device node present: %s\n", node)

	f, err := os.OpenFile(node, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		fmt.Printf("✗ Cannot open %s: %v\n", node, err)
		fmt.Println()
		fmt.Println("  Grant your user write access, either by joining the input group:")
		fmt.Printf("      sudo usermod -aG input %s\n", os.Getenv("USER"))
		fmt.Println("      (log out and back in afterwards)")
		fmt.Println()
		fmt.Println("  or with a udev rule:")
		fmt.Println(`      echo 'KERNEL=="uinput", MODE="0660", GROUP="input"' | \`)
		fmt.Println("          sudo tee /etc/udev/rules.d/99-uinput.rules")
		fmt.Println("      sudo udevadm control --reload-rules && sudo udevadm trigger")
		return fmt.Errorf("no write access to %s", node)
	}
	f.Close()

	fmt.Printf("✓ %s is writable\n", node)
	fmt.Println()
	fmt.Println("Setup looks good. Start the driver with:")
	fmt.Println("    gesturehid run")
	return nil
}
