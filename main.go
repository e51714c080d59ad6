package main

import "github.com/GustavoCaso/expensetracker/internal/cli"

func main() {
	cli.Execute()
}
