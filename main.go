package main

import "workday/cmd"

func main() {
	cmd.Execute()
}
