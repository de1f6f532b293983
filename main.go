package main

import "github.com/alexiusacademia/goflo/cmd"

func main() {
	cmd.Execute()
}
