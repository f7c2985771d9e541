package main

import "github.com/jonathanmweiss/go-polynomial/internal/cli"

func main() {
	cli.Execute()
}
