package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltgraph/voltgraph/device"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the device the engine would run on",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadDeviceConfig()
	if err != nil {
		return err
	}
	dev, err := device.New(cfg)
	if err != nil {
		return err
	}

	free, total := dev.MemInfo()
	fmt.Printf("device:  %s\n", dev.Name())
	fmt.Printf("id:      %s\n", dev.ID())
	fmt.Printf("workers: %d\n", dev.Workers())
	fmt.Printf("memory:  %d MiB total, %d MiB free\n", total>>20, free>>20)

	return nil
}
