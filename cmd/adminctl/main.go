package main

import "sessionvault/cmd/adminctl/cmd"

func main() {
	cmd.Execute()
}
