package main

import (
	"time"

	"github.com/purl-cli/purl/cmd"
)

var Version string
var Buildtime string

func main() {
	appVersion := "local"
	if Version != "" {
		appVersion = Version
	}

	appBuildtime, _ := time.Parse(time.RFC3339, Buildtime)

	cmd.Execute(cmd.ExecuteParams{
		Version:  appVersion,
		Compiled: appBuildtime,
	})
}
