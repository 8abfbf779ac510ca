package main

import "github.com/filesift/filesift/internal/cli"

func main() {
	cli.Execute()
}
