/*
Copyright © 2025 hitesh0303
*/
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hitesh0303/union-coders/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// API keys come from the environment; a missing .env file is fine when
	// they are set some other way.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
}
