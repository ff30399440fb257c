package main

import (
	"fmt"

	"github.com/spf13/cobra"

	netcore "github.com/packetkit/netcore"
	"github.com/packetkit/netcore/driver"
)

func newRunCmd() *cobra.Command {
	var nt, nr, count, mtu int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Send count packets through a simulated loopback ring and report what comes back",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRing(cmd, nt, nr, count, mtu)
		},
	}

	cmd.Flags().IntVar(&nt, "nt", 8, "transmit ring capacity")
	cmd.Flags().IntVar(&nr, "nr", 8, "receive ring capacity")
	cmd.Flags().IntVar(&count, "count", 4, "number of packets to send")
	cmd.Flags().IntVar(&mtu, "mtu", 1500, "payload size per packet")
	return cmd
}

func runRing(cmd *cobra.Command, nt, nr, count, mtu int) error {
	dev := driver.NewLoopback(nt, nr, 1000)
	pool := netcore.NewPool()
	link := netcore.LinkProperties{MinPacketSize: 64, HeaderSize: 14, FooterSize: 4, Alignment: 8}

	received := 0
	ctrl, err := driver.NewController(dev, pool, driver.Config{
		Nt:   nt,
		Nr:   nr,
		Link: link,
		OnReceive: func(b *netcore.PacketBuffer) {
			received++
			fmt.Fprintf(cmd.OutOrStdout(), "received packet %d: %d bytes\n", received, len(b.Payload()))
		},
		OnLinkChange: func(state driver.LinkState, speed int) {
			fmt.Fprintf(cmd.OutOrStdout(), "link %s at %d Mbps\n", state, speed)
		},
	})
	if err != nil {
		return err
	}
	if err := ctrl.Reset(); err != nil {
		return err
	}
	if err := ctrl.Enable(); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		buf, err := pool.Allocate(0, mtu, 0, &link, netcore.AllocFlagDeviceHeaders)
		if err != nil {
			return fmt.Errorf("allocating packet %d: %w", i, err)
		}
		list := netcore.NewPacketList()
		list.PushBack(buf)
		if err := ctrl.Send(list); err != nil {
			return fmt.Errorf("sending packet %d: %w", i, err)
		}
	}

	for ctrl.TopHalf() {
		ctrl.BottomHalf()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "sent %d packets, received %d\n", count, received)
	return nil
}
