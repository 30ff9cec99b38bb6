package main

import "github.com/m8811163008/visitor-desing-pattern/cmd"

func main() {
	cmd.Execute()
}
