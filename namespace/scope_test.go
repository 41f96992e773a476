package namespace

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"cinder/internals"
	"cinder/object"
)

func TestScopeExactRemoval(t *testing.T) {
	ns := New()

	outer := ns.EnterScope()
	require.NoError(t, ns.Insert("a", &object.Variable{Name: "a", Type: "int128"}))

	inner := ns.EnterScope()
	snapshot := ns.Bindings()

	require.NoError(t, ns.Insert("b1", &object.Variable{Name: "b1", Type: "bool"}))
	require.NoError(t, ns.Insert("b2", &object.Variable{Name: "b2", Type: "bool"}))
	inner.Exit()

	// exactly the inner scope's names are gone, everything else is as
	// it was right after entering it
	if diff := deep.Equal(snapshot, ns.Bindings()); diff != nil {
		t.Errorf("inner scope exit did not restore the namespace: %v", diff)
	}
	if !ns.Has("a") || !ns.Has("len") || !ns.Has("self") {
		t.Error("enclosing and bootstrap bindings must survive an inner scope exit")
	}

	outer.Exit()
	if ns.Has("a") {
		t.Error("'a' should be unbound after its scope closed")
	}
	if ns.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", ns.Depth())
	}
}

func TestMutableEnvArrivesWithFirstScope(t *testing.T) {
	ns := New()
	require.False(t, ns.Has("self"))

	outer := ns.EnterScope()
	require.True(t, ns.Has("self"), "'self' should exist inside the top-level scope")

	// still visible from nested scopes, and a nested exit does not
	// take it away
	inner := ns.EnterScope()
	require.True(t, ns.Has("self"))
	inner.Exit()
	require.True(t, ns.Has("self"))

	outer.Exit()
	require.False(t, ns.Has("self"), "'self' dies with the outermost scope")

	// a second top-level scope gets it again
	again := ns.EnterScope()
	require.True(t, ns.Has("self"))
	again.Exit()
}

func TestEndToEnd(t *testing.T) {
	ns := New()
	intDef := &object.Variable{Name: "x", Type: "int128", IsMutable: true}

	scope := ns.EnterScope()
	require.NoError(t, ns.Insert("x", intDef))

	got, err := ns.Lookup("x")
	require.NoError(t, err)
	require.Same(t, intDef, got)

	scope.Exit()

	_, err = ns.Lookup("x")
	var undeclared *internals.UndeclaredError
	require.ErrorAs(t, err, &undeclared)
}

func TestGuardClosesOnErrorPath(t *testing.T) {
	ns := New()

	process := func() error {
		scope := ns.EnterScope()
		defer scope.Exit()

		if err := ns.Insert("tmp", &object.Variable{Name: "tmp", Type: "bool"}); err != nil {
			return err
		}
		// something inside the block fails after the declaration
		return errors.New("boom")
	}

	err := process()
	require.EqualError(t, err, "boom")
	require.False(t, ns.Has("tmp"), "scope must close on the error path too")
	require.Equal(t, 0, ns.Depth())
}

func TestExitWithNoOpenScopePanics(t *testing.T) {
	ns := New()
	scope := ns.EnterScope()

	// an aborted traversal resets the instance while a guard is still
	// alive; releasing that stale guard is a compiler bug
	ns.Reset()

	require.PanicsWithError(t, "scope exit with no open scope", func() {
		scope.Exit()
	})
}

func TestDoubleReleasePanics(t *testing.T) {
	ns := New()
	scope := ns.EnterScope()
	scope.Exit()

	require.PanicsWithError(t, "scope guard released twice", func() {
		scope.Exit()
	})
}
