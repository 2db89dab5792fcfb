package main

import "github.com/debghosh/mysticresin/cmd"

func main() {
	cmd.Execute()
}
