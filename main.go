package main

import "github.com/groghall/tavernbot/cmd"

func main() {
	cmd.Execute()
}
