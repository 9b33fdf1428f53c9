package main

import (
	"github.com/sirupsen/logrus"

	"github.com/hubsync/hubsync/cmd"
)

// init configures the initial logging level for hubsync.
//
// It sets logrus to InfoLevel by default, ensuring basic operational logs
// are visible unless overridden by flags like --debug or --log-level in cmd.
func init() {
	logrus.SetLevel(logrus.InfoLevel)
}

// main serves as the entry point for the hubsync application.
//
// It delegates execution to the cmd package, which handles CLI setup, flag
// parsing, and the catalog synchronization commands.
func main() {
	cmd.Execute()
}
