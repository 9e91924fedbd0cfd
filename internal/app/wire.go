package app

import (
	"github.com/sirupsen/logrus"

	"github.com/yellottyellott/chat-parser/internal/infra/httpclient"
	"github.com/yellottyellott/chat-parser/internal/title"
	"github.com/yellottyellott/chat-parser/internal/usecase"
)

func newHandler(cfg Config, log logrus.FieldLogger) *usecase.Handler {
	httpc := httpclient.New(cfg.Timeout, cfg.UserAgent)

	res := title.NewResolver(httpc, cfg.Timeout, log)
	res.MaxBodyRead = cfg.MaxBodyBytes

	links := usecase.NewLinkPipeline(res, cfg.Workers, log)
	return usecase.NewHandler(links)
}
