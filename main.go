package main

import "github.com/ibarra/shelfr/cmd"

func main() {
	cmd.Execute()
}
