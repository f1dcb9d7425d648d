package main

import "github.com/KaramelBytes/usincome-cli/cmd"

func main() {
	cmd.Execute()
}
