package main

import "result-checker/cmd"

func main() {
	cmd.Execute()
}
