package main

import "github.com/controleponto/ponto/cmd"

func main() {
	cmd.Execute()
}
