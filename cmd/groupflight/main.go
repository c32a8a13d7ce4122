// Command groupflight serves the group flight planner: the JSON data API
// under /api and the Airline and Event pages that call it.
package main

import (
	"context"
	"log"

	"github.com/dalemusser/groupflight/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
