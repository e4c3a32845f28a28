package main

import "github.com/sih-tools/psgrab/internal/cli"

func main() {
	cli.Execute()
}
