package nlsearch

import (
	"context"
	"time"

	"github.com/arjunm592/airtravel/internal/domain"
	"go.uber.org/zap"
)

const defaultTimeout = 12 * time.Second

const instruction = `Extract flight search parameters from the text below.
Respond with JSON only, using exactly the keys "from", "to", "date" and "travel_class".
"from" and "to" are airport codes, "date" is YYYY-MM-DD.
Use an empty string for any value you cannot determine.

Text: `

type ExtractorUseCase interface {
	Extract(ctx context.Context, text string) domain.SearchFilters
}

// Extractor turns free text into search filters via the configured provider.
// It never returns an error: provider failures, timeouts and unparsable
// responses all degrade to the all-empty filter set, so a search still runs,
// just unfiltered.
type Extractor struct {
	provider Provider
	timeout  time.Duration
	log      *zap.Logger
}

func NewExtractor(provider Provider, timeout time.Duration, log *zap.Logger) *Extractor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{provider: provider, timeout: timeout, log: log}
}

func (e *Extractor) Extract(ctx context.Context, text string) domain.SearchFilters {
	if _, ok := e.provider.(NoopProvider); ok {
		return domain.SearchFilters{}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.provider.Complete(ctx, instruction+text)
	if err != nil {
		e.log.Warn("nl extraction failed, falling back to unfiltered search",
			zap.String("provider", e.provider.Name()), zap.Error(err))
		return domain.SearchFilters{}
	}

	return ParseFilters(raw)
}

var _ ExtractorUseCase = (*Extractor)(nil)
