package main

import "github.com/iksnae/session-history/cmd"

func main() {
	cmd.Execute()
}
