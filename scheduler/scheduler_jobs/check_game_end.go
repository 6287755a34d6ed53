package scheduler_jobs

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
)

// CheckGameEnd records final scores for kicked-off games and settles each
// game's winner against the spread.
func CheckGameEnd(ctx context.Context, d Deps) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckGameEnd", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckGameEnd: %v", r)
		}
	}()

	results, err := d.Results.RecordResults(ctx, d.now())
	if len(results) > 0 {
		log.Printf("recorded %d final scores", len(results))
	}
	return err
}
