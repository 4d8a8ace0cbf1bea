package main

import "github.com/gaurav-prasanna/storypress/cmd"

func main() {
	cmd.Execute()
}
