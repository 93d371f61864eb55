package main

import "didact/cmd/didact-cli/cmd"

func main() {
	cmd.Execute()
}
