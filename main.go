package main

import "item-parser/internal/cli"

func main() {
	cli.Execute()
}
