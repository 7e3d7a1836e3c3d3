package main

import "github.com/tabr-dev/tabr/cmd"

func main() {
	cmd.Execute()
}
