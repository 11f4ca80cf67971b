package main

import "ptctl/cli"

func main() {
	cli.Execute()
}
