package main

import "simpleblog/cmd/blogctl/cli"

func main() {
	cli.Execute()
}
