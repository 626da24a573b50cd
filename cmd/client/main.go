package main

import (
	"nftcatalog/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
