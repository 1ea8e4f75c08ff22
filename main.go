package main

import "github.com/tmakinen/partwise/cmd"

func main() {
	cmd.Execute()
}
