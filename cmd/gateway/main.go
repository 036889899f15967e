// Package main is the entry point of the API gateway.
package main

import (
	"calendar-server/internal"
)

func main() {
	internal.RunGateway()
}
