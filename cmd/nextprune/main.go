package main

import "github.com/kodelint/next-prune/internal/cli"

func main() {
	cli.Execute()
}
