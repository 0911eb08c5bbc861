package main

import (
	cmd "github.com/kerbaras/scriptures/cmd/scriptures"
)

func main() {
	cmd.Execute()
}
