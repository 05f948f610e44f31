package main

import "github.com/cedtools/cedfs/cmd/cfs/cmd"

func main() {
	cmd.Execute()
}
