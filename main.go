package main

import "tour-insight/cmd"

func main() {
	cmd.Execute()
}
