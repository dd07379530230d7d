package main

import "github.com/sumwatshade/cabinwatch/cmd"

func main() {
	cmd.Execute()
}
