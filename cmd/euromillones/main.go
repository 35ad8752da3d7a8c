package main

import "github.com/pfrederiksen/euromillones/internal/cli"

func main() {
	cli.Execute()
}
