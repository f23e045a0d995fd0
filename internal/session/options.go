// SPDX-License-Identifier: MIT

package session

import (
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/echelon/echelon"
)

// Option configures a Session.
type Option func(*Options)

// Options holds the Session configuration; build it through Option values.
type Options struct {
	logger hclog.Logger
	table  bool
	steps  bool
	engine []echelon.Option
}

// WithLogger routes session and engine logs to l. nil selects the null logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = hclog.NewNullLogger()
		}
		o.logger = l
	}
}

// WithTable renders matrices as bordered tables.
func WithTable(on bool) Option {
	return func(o *Options) { o.table = on }
}

// WithSteps prints the elementary row operations after each reduction.
func WithSteps(on bool) Option {
	return func(o *Options) { o.steps = on }
}

// WithEngineOptions forwards options to every echelon.Reduce call.
func WithEngineOptions(opts ...echelon.Option) Option {
	return func(o *Options) { o.engine = append(o.engine, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
