package main

import "github.com/scenecv/scenecv/cmd"

func main() {
	cmd.Execute()
}
