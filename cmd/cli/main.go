package main

import "askpass/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
