package router

import (
	"context"

	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/taskparser"
)

// Router answers chat messages with canned replies.
type Router interface {
	Route(ctx context.Context, input Input) Output
}

// KeywordRouter matches messages against static keyword tables.
type KeywordRouter struct {
	l      log.Logger
	parser *taskparser.Parser
	roles  map[model.Role][]rule
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. parser may be nil to disable task capture.
func New(l log.Logger, parser *taskparser.Parser) *KeywordRouter {
	return &KeywordRouter{
		l:      l,
		parser: parser,
		roles:  roleRules(),
	}
}
