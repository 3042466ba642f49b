package main

import "exlibris/cmd/cli/command"

func main() {
	command.Execute()
}
