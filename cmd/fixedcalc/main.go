package main

import "github.com/govalues/fixed/internal/cli"

func main() {
	cli.Execute()
}
