package main

import "github.com/blueset/calc-sub004/cmd/calc/cmd"

func main() {
	cmd.Execute()
}
