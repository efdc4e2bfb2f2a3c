package main

import "treasury/cmd/treasury/root"

func main() {
	root.Execute()
}
