package main

import (
	"log"

	"github.com/D4vidDf/HyperBridge/cmd"
	"github.com/D4vidDf/HyperBridge/database/dbcore"
)

func main() {
	if !dbcore.InitDatabase() {
		log.Println("Fresh database created")
	}

	cmd.Execute()
}
