// Package main is the entry point of the todos service.
package main

import (
	"calendar-server/internal"
)

func main() {
	internal.RunService(internal.TodosService, "8003")
}
