package main

import "github.com/DavidAnderegg/pysurf/cmd"

func main() {
	cmd.Execute()
}
