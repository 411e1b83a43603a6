package main

import "github.com/stewartoallen/mesh-to-points/cmd/meshpath/cmd"

func main() {
	cmd.Execute()
}
