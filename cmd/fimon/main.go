package main

import "github.com/fimon-project/fimon/internal/cli"

func main() {
	cli.Execute()
}
