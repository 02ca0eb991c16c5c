package main

import "github.com/jsphweid/stradella/cmd"

func main() {
	cmd.Execute()
}
