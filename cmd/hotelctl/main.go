package main

import (
	"os"

	"hotel-management-api/cmd/hotelctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
