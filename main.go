package main

import "tubestatus/cmd"

func main() {
	cmd.Execute()
}
