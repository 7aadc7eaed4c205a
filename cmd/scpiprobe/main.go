// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// scpiprobe connects to an instrument over TCP or serial, identifies
// it, runs ad-hoc commands from the command line and drains the error
// queue afterwards.
//
//	scpiprobe -addr 10.0.0.5:5025 "MEAS:VOLT? (@1)"
//	scpiprobe -serial /dev/ttyUSB0 -baud 115200 "*RST" "SYST:BEEP"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gomeasure/gomeasure/pkg/catalog"
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

func main() {
	if err := main_(); err != nil {
		os.Exit(101)
	}
	os.Exit(0)
}

func main_() error {
	addr := flag.String("addr", "", "instrument address (host:port, raw socket)")
	serialPort := flag.String("serial", "", "serial port device (alternative to -addr)")
	baud := flag.Int("baud", 9600, "serial baud rate")
	profileDir := flag.String("profiles", "", "directory with model profile YAML files")
	model := flag.String("model", "", "model name to look up in the profile catalog")
	logLevel := flag.Int("logger", 2, "log level (select between 0..4)")
	flag.Parse()
	slog.SetDefault(NewLogger(*logLevel))
	slog.Debug(fmt.Sprintf("Log level: %d", *logLevel))

	tr, err := openTransport(*addr, *serialPort, *baud)
	if err != nil {
		slog.Error(fmt.Sprint(err))
		return err
	}
	defer tr.Close()

	config := scpi.Config{Name: "probe"}
	if *profileDir != "" && *model != "" {
		cat := catalog.New()
		if err := cat.LoadDir(*profileDir); err != nil {
			slog.Error(fmt.Sprint(err))
			return err
		}
		if profile, ok := cat.Profile(*model); ok {
			config = profile.Config()
			slog.Info(fmt.Sprintf("Profile: %s", config.Name))
		} else {
			slog.Warn(fmt.Sprintf("No profile for model %s", *model))
		}
	}
	inst := scpi.NewInstrument(tr, config)

	id, err := inst.ID()
	if err != nil {
		slog.Error(fmt.Sprint(err))
		return err
	}
	fmt.Println(id)

	for _, command := range flag.Args() {
		if strings.Contains(command, "?") {
			response, err := inst.Ask(command)
			if err != nil {
				slog.Error(fmt.Sprint(err))
				return err
			}
			fmt.Println(response)
		} else {
			if err := inst.Write(command); err != nil {
				slog.Error(fmt.Sprint(err))
				return err
			}
		}
	}

	entries, err := inst.CheckErrors()
	for _, entry := range entries {
		fmt.Println(entry)
	}
	if err != nil {
		slog.Error(fmt.Sprint(err))
		return err
	}
	return nil
}

func openTransport(addr, serialPort string, baud int) (transport.Transport, error) {
	switch {
	case addr != "" && serialPort != "":
		return nil, fmt.Errorf("use either -addr or -serial, not both")
	case addr != "":
		return transport.DialTCP(addr)
	case serialPort != "":
		return transport.OpenSerial(transport.SerialConfig{Port: serialPort, Baud: baud})
	default:
		return nil, fmt.Errorf("no instrument given, use -addr or -serial")
	}
}
