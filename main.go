package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/t-kuni/pdfmerge/cmd"
)

func main() {
	godotenv.Load(".env")

	err := cmd.NewRootCommand().CobraCommand.Execute()
	if err != nil {
		os.Exit(1)
	}
}
