package main

import "github.com/practiq/practiq_backend/cmd"

func main() {
	cmd.Execute()
}
