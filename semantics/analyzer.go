package semantics

import (
	"io"
	"log/slog"

	"cinder/internals"
	"cinder/namespace"
	"cinder/object"
)

// Analyzer is the per-compilation-unit context for semantic analysis.
// It owns the namespace and the diagnostics collected against it, and
// is threaded explicitly through the AST traversal, one instance per
// unit. Whoever starts a compilation constructs it, whoever finishes
// one drops or resets it.
type Analyzer struct {
	ns       *namespace.Namespace
	errors   *internals.ErrorCollector
	filename string
	logger   *slog.Logger
}

func NewAnalyzer(filename string) *Analyzer {
	return &Analyzer{
		ns:       namespace.New(),
		errors:   internals.NewErrorCollector(),
		filename: filename,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger enables debug logging of scope and declaration traffic.
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	a.logger = logger
	return a
}

// Namespace exposes the table itself, other passes key their caches on
// this pointer.
func (a *Analyzer) Namespace() *namespace.Namespace {
	return a.ns
}

func (a *Analyzer) Errors() []error {
	return a.errors.Errors
}

func (a *Analyzer) HasErrors() bool {
	return a.errors.HasErrors()
}

// Declare binds name at the current nesting level. A rejected name is
// recorded against the source position and analysis keeps going; the
// namespace is untouched in that case.
func (a *Analyzer) Declare(name string, def object.Definition, row, col int) bool {
	if err := a.ns.Insert(name, def); err != nil {
		a.errors.Add(internals.At(a.filename, row, col, err))
		return false
	}
	a.logger.Debug("declare", "name", name, "kind", def.Kind(), "depth", a.ns.Depth())
	return true
}

// Resolve looks up an identifier occurrence. A miss is collected like
// any other diagnostic, the traversal decides whether to bail.
func (a *Analyzer) Resolve(name string, row, col int) (object.Definition, bool) {
	def, err := a.ns.Lookup(name)
	if err != nil {
		a.errors.Add(internals.At(a.filename, row, col, err))
		return nil, false
	}
	return def, true
}

// EnterScope opens a nesting level on behalf of the walker, which only
// holds the analyzer. Close the returned guard on every path out of
// the block.
func (a *Analyzer) EnterScope() *namespace.Scope {
	a.logger.Debug("enter scope", "depth", a.ns.Depth()+1)
	return a.ns.EnterScope()
}

// Reset drops all collected state between independent units while
// keeping the instance. After an aborted run this is mandatory, open
// scopes from the failed traversal are discarded wholesale.
func (a *Analyzer) Reset() {
	a.ns.Reset()
	a.errors = internals.NewErrorCollector()
}
