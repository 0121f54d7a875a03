// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--version] [--watch] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// turn Signals into context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	var watcher *fileWatcher
	if len(options["watch"]) > 0 {
		watcher, err = newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix))
		if nil == err {
			err = watcher.Start(ctx)
		}
		if nil != err {
			exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
		}
	}

	// logging settings are only taken from the first configuration
	for {
		if err := runOnce(ctx, masterConfiguration, quiet, log); nil != err {
			exitwithstatus.Message("%s: workload failed: %s", program, err)
		}

		if nil == watcher || nil != ctx.Err() {
			return
		}

		if !quiet {
			fmt.Printf("\nwaiting for changes to: %s\n", configurationFile)
		}

	wait_for_change:
		for {
			select {
			case <-ctx.Done():
				return
			case <-watcher.Removed():
				log.Warn("configuration removed, stopping")
				return
			case <-watcher.Changed():
				c, err := getConfiguration(configurationFile)
				if nil != err {
					log.Errorf("failed to read configuration from: %q  error: %s", configurationFile, err)
					continue wait_for_change
				}
				masterConfiguration = c
				break wait_for_change
			}
		}
	}
}

// build a table, run the workload against it and report
func runOnce(ctx context.Context, config *Configuration, quiet bool, log *logger.L) error {
	w, err := newWorkload(config, log)
	if nil != err {
		log.Criticalf("workload setup failed: %s", err)
		return err
	}
	defer w.close()

	result, err := w.run(ctx)
	if !quiet && nil != result {
		printJson("result", result)
	}
	if nil != err {
		log.Criticalf("workload failed: %s", err)
		return err
	}

	if config.Dump {
		err := w.table.Dump(os.Stdout, func(value interface{}) string {
			return fmt.Sprintf("%v", value)
		})
		if nil != err {
			log.Errorf("dump error: %s", err)
		}
	}
	return nil
}

// print a JSON block to stdout
func printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
}
