package main

import "golang-persistent-eth/cmd"

func main() {
	cmd.Execute()
}
