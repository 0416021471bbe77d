// Package ranking defines the applicant-ranker collaborator contract. The
// scoring algorithm itself lives outside this codebase; callers only rely
// on the contract below.
package ranking

import (
	"context"

	"workwise/internal/domain/application"
	"workwise/internal/domain/job"
)

// Ranker orders a posting's applications by the collaborator's own
// criteria. Implementations must return every input application exactly
// once; the order is otherwise opaque to this system.
type Ranker interface {
	Rank(ctx context.Context, posting job.Posting, apps []application.Application) ([]application.Application, error)
}
