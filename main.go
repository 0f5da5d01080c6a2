package main

import (
	"fmt"
	"os"

	"github.com/bvisness/keycast/app"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "replay":
			if len(os.Args) < 3 {
				fmt.Println("Usage: keycast replay <session.jsonl>")
				return
			}
			app.HeadlessReplay(os.Args[2])
			return
		case "record":
			if len(os.Args) < 3 {
				fmt.Println("Usage: keycast record <session.jsonl>")
				return
			}
			app.Record(os.Args[2])
			return
		}
	}
	app.Main()
}
