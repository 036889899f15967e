// Package main is the entry point of the events service.
package main

import (
	"calendar-server/internal"
)

func main() {
	internal.RunService(internal.EventsService, "8002")
}
