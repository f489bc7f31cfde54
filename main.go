package main

import "github.com/relloyd/mtgpipe/cmd"

func main() {
	cmd.Execute()
}
