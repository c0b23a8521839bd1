package main

import "openlego/internal/cli"

func main() {
	cli.Execute()
}
