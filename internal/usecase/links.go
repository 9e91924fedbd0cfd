package usecase

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yellottyellott/chat-parser/internal/domain"
	"github.com/yellottyellott/chat-parser/internal/extract"
	"github.com/yellottyellott/chat-parser/internal/grammar"
	"github.com/yellottyellott/chat-parser/internal/ports"
)

// DefaultWorkers is the number of titles resolved at once.
const DefaultWorkers = 4

// LinkPipeline finds links in text and resolves their titles.
type LinkPipeline struct {
	extractor *extract.Extractor
	resolver  ports.TitleResolver
	workers   int
	log       logrus.FieldLogger
}

func NewLinkPipeline(resolver ports.TitleResolver, workers int, log logrus.FieldLogger) *LinkPipeline {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &LinkPipeline{
		extractor: &extract.Extractor{
			Name:         string(domain.KindLinks),
			Pattern:      grammar.Link,
			PreserveCase: true,
		},
		resolver: resolver,
		workers:  workers,
		log:      log,
	}
}

// Parse returns one Link per distinct URL in text, in the order the URLs
// first appear. Titles are resolved concurrently; a failed resolution only
// leaves that link's title empty. Text without links makes no requests.
func (p *LinkPipeline) Parse(ctx context.Context, text string) ([]domain.Link, error) {
	if p == nil {
		return nil, &extract.ConfigurationError{Component: string(domain.KindLinks)}
	}

	urls, err := p.extractor.Extract(text)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, nil
	}
	if p.resolver == nil {
		return nil, &extract.ConfigurationError{Component: "links resolver"}
	}

	p.log.WithField("count", len(urls)).Debug("resolving link titles")

	// Each worker writes only its own index, so results keep discovery order.
	links := make([]domain.Link, len(urls))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			links[i] = domain.Link{URL: u, Title: p.resolver.Resolve(ctx, u)}
			return nil
		})
	}
	_ = g.Wait()

	return links, nil
}
