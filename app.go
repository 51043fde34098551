package main

import "github.com/masmgr/locktrail-go/cmd"

func main() {
	cmd.Run()
}
