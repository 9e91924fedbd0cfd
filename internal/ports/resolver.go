package ports

import "context"

// TitleResolver turns a URL into a page title. It never fails: any problem
// yields an empty title.
type TitleResolver interface {
	Resolve(ctx context.Context, rawURL string) string
}
