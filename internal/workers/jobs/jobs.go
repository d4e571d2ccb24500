package jobs

import "context"

// Job is a periodic background task that runs until its context ends
type Job interface {
	Run(ctx context.Context)
}
