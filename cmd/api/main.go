package main

import "github.com/vfg2006/cafe-report-api/cmd/api/commands"

func main() {
	commands.Execute()
}
