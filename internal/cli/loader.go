package cli

import (
	"github.com/dkarlsen/webstore/internal/dataset"
	"github.com/dkarlsen/webstore/internal/query"
	"github.com/dkarlsen/webstore/internal/source"
	"github.com/dkarlsen/webstore/internal/source/memsource"
	"github.com/dkarlsen/webstore/internal/sqlstore"
)

// openSource resolves the global --db/--data flags into a query source.
// Exactly one of the two must be set. The returned close func is always
// non-nil and safe to defer.
func openSource(opts *RootOptions) (source.Source, func() error, error) {
	noop := func() error { return nil }

	switch {
	case opts.Database != "" && opts.Data != "":
		return nil, noop, NewExitError(ExitCommandError, "--db and --data are mutually exclusive")
	case opts.Database == "" && opts.Data == "":
		return nil, noop, NewExitError(ExitCommandError, "one of --db or --data is required")
	}

	if opts.Database != "" {
		st, err := sqlstore.Open(opts.Database)
		if err != nil {
			return nil, noop, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		return st, st.Close, nil
	}

	data, err := dataset.Load(opts.Data)
	if err != nil {
		return nil, noop, WrapExitError(ExitCommandError, "failed to load dataset", err)
	}
	return memsource.New(data), noop, nil
}

// openEngine wires openSource into a query engine.
func openEngine(opts *RootOptions) (*query.Engine, func() error, error) {
	src, closeSource, err := openSource(opts)
	if err != nil {
		return nil, closeSource, err
	}
	return query.New(src), closeSource, nil
}

// queryFailure wraps a query error with the failure exit code.
func queryFailure(message string, err error) error {
	return WrapExitError(ExitFailure, message, err)
}
