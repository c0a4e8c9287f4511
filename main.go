package main

import "github.com/theirongolddev/billtab/cmd"

func main() {
	cmd.Execute()
}
