package main

import "github.com/gaurav-prasanna/richtext/cmd"

func main() {
	cmd.Execute()
}
