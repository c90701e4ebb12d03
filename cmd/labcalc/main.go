package main

import "github.com/tazomatalax/lab-calculator/internal/cli"

func main() {
	cli.Execute()
}
