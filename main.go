package main

import "github.com/discoverislamwebvercel-alt/discover-islam-sub000/cmd"

func main() {
	cmd.Execute()
}
