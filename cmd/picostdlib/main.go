package main

import "github.com/flplv/picostdlib/cmd/picostdlib/internal"

func main() {
	internal.Execute()
}
