package main

import "github.com/jsupreme/bgkit/cmd"

func main() {
	cmd.Execute()
}
