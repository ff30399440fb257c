package main

import (
	"fmt"

	"github.com/spf13/cobra"

	netcore "github.com/packetkit/netcore"
	"github.com/packetkit/netcore/genl"
)

type stdoutSocket struct {
	cmd *cobra.Command
}

func (s stdoutSocket) Send(buf []byte) error {
	fmt.Fprintf(s.cmd.OutOrStdout(), "reply: %d bytes\n", len(buf))
	return nil
}

func newDispatchCmd() *cobra.Command {
	var familyName string

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Register a demo family and control-family GET_FAMILY it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, familyName)
		},
	}

	cmd.Flags().StringVar(&familyName, "family-name", "demo", "name of the family to register and query")
	return cmd
}

func runDispatch(cmd *cobra.Command, familyName string) error {
	pool := netcore.NewPool()
	reg := genl.NewRegistry(16, 1023, pool)

	ctrlHandle, err := genl.RegisterControlFamily(reg)
	if err != nil {
		return err
	}
	defer reg.Unregister(ctrlHandle)

	demoHandle, err := reg.Register(genl.Properties{
		Name:    familyName,
		Version: 1,
		Commands: map[uint8]genl.CommandCallback{
			1: func(sock genl.Socket, attrs []byte, params genl.Params) error {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: GET_INFO invoked\n", familyName)
				return nil
			},
		},
	})
	if err != nil {
		return err
	}
	defer reg.Unregister(demoHandle)

	var attrs []byte
	attrs = genl.EncodeAttribute(attrs, genl.AttrFamilyName, append([]byte(familyName), 0))

	msg := make([]byte, 20, 20+len(attrs))
	total := uint32(len(msg) + len(attrs))
	msg[0], msg[1], msg[2], msg[3] = byte(total), byte(total>>8), byte(total>>16), byte(total>>24)
	fid := ctrlHandle.Family().ID()
	msg[4], msg[5] = byte(fid), byte(fid>>8)
	msg[16] = genl.CmdGetFamily
	msg = append(msg, attrs...)

	return reg.Dispatch(stdoutSocket{cmd: cmd}, msg)
}
