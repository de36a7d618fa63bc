package main

import (
	"github.com/joho/godotenv"

	"github.com/Lodziarka/GOD-X/cmd/godx"
)

func main() {
	// Optional; the environment wins over a .env file.
	_ = godotenv.Load()
	godx.Execute()
}
