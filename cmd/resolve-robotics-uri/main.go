package main

import "resolve-robotics-uri/internal/cli"

func main() {
	cli.Execute()
}
