// Command netcoresim demonstrates the ring engine and family registry
// wired together end to end, in place of the teacher's Windows-only
// example binaries (examples/*), which talked to a real NDIS driver
// this module has no equivalent for.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "netcoresim",
		Short: "Drive a simulated NIC ring engine and family registry",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newDispatchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
