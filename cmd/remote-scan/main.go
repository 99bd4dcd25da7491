// remote-scan checks that a Bluetooth adapter can be opened and lists the peripherals it sees,
// marking the one the receiver would connect to.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/cli"
	"github.com/esp32remote/receiver/pkg/connector/ble"
	"github.com/esp32remote/receiver/pkg/session"
)

var scanTime = flag.Duration("scan-time", session.DefaultTiming.ScanSettle, "How long to scan")

func main() {
	status := 1
	defer func() {
		os.Exit(status)
	}()

	config, err := cli.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %s\n", err)
		return
	}
	config.RegisterCommandLineFlags()
	flag.Parse()
	config.ReadFromEnvironment()
	log.SetLevel(config.LogLevel())

	opener, err := config.NewAdapterOpener()
	if err != nil {
		log.Error("%s", err)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Info("Opening %s adapter", config.Backend())
	adapter, err := opener(ctx)
	if err != nil {
		log.Error("Failed to initialize BLE device: %s", err)
		return
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			log.Warning("%s", err)
		}
	}()

	log.Info("Scanning for %s", *scanTime)
	beacons, err := adapter.Scan(ctx, *scanTime)
	if err != nil {
		log.Error("Scan failed: %s", err)
		return
	}

	for _, b := range beacons {
		marker := " "
		if b.LocalName == session.PeripheralName {
			marker = "*"
		}
		fmt.Printf("%s %-20s %4d dBm  %s\n", marker, b.Address, b.RSSI, b.LocalName)
	}
	if _, ok := ble.FindByName(beacons, session.PeripheralName); !ok {
		log.Warning("%s was not seen within %s", session.PeripheralName, *scanTime)
	}
	status = 0
}
