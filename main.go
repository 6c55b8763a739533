package main

import "github.com/aldesouky/seedarr/cmd"

func main() {
	cmd.Execute()
}
