package main

import "github.com/mmuldo/labcodec/cmd"

func main() {
	cmd.Execute()
}
