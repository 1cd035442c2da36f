package main

import "github.com/turnos-app/turnos_backend/cmd"

func main() {
	cmd.Execute()
}
