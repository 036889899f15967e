// Package main is the entry point of the auth service.
package main

import (
	"calendar-server/internal"
)

func main() {
	internal.RunService(internal.AuthService, "8001")
}
