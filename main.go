package main

import "github.com/bnema/addonscan/cmd"

func main() {
	cmd.Execute()
}
