package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ruleRegistry is a minimal KindRegistry for validator tests: audio may only
// feed transcribe, every other registered kind may feed anything.
type ruleRegistry struct{}

func (ruleRegistry) Known(kind string) bool {
	switch kind {
	case "text", "image", "audio", "transcribe":
		return true
	}
	return kind == KindPlaceholder
}

func (ruleRegistry) DefaultData(kind string) map[string]any {
	return map[string]any{}
}

func (ruleRegistry) CanConnect(sourceKind, targetKind string) bool {
	if sourceKind == KindPlaceholder || targetKind == KindPlaceholder {
		return false
	}
	if sourceKind == "audio" {
		return targetKind == "transcribe"
	}
	return true
}

func validatorFixture(t *testing.T) (*Store, *Validator) {
	t.Helper()
	s := NewStore()
	s.AddNodes(
		testNode("a", "image", 0, 0),
		testNode("b", "transcribe", 100, 0),
		testNode("c", "text", 200, 0),
		testNode("mic", "audio", 0, 100),
	)
	return s, NewValidator(s, ruleRegistry{})
}

func TestValidator_RejectsSelfLoop(t *testing.T) {
	_, v := validatorFixture(t)
	assert.False(t, v.IsValidConnection(Connection{Source: "a", Target: "a"}))
	assert.ErrorIs(t, v.Check(Connection{Source: "a", Target: "a"}), ErrSelfLoop)
}

func TestValidator_RejectsEmptyTarget(t *testing.T) {
	_, v := validatorFixture(t)
	assert.False(t, v.IsValidConnection(Connection{Source: "a"}))
}

func TestValidator_RejectsUnknownNodes(t *testing.T) {
	_, v := validatorFixture(t)
	assert.False(t, v.IsValidConnection(Connection{Source: "ghost", Target: "a"}))
	assert.False(t, v.IsValidConnection(Connection{Source: "a", Target: "ghost"}))
}

func TestValidator_KindCompatibility(t *testing.T) {
	_, v := validatorFixture(t)

	// audio may only feed transcribe
	assert.True(t, v.IsValidConnection(Connection{Source: "mic", Target: "b"}))
	assert.False(t, v.IsValidConnection(Connection{Source: "mic", Target: "c"}))
	assert.ErrorIs(t, v.Check(Connection{Source: "mic", Target: "c"}), ErrIncompatibleKinds)
}

func TestValidator_CyclePrevention(t *testing.T) {
	s, v := validatorFixture(t)

	// image A feeds transcribe B, then B -> A would close A -> B -> A.
	require.True(t, v.IsValidConnection(Connection{Source: "a", Target: "b"}))
	require.NoError(t, s.AddEdges(Edge{ID: "ab", Source: "a", Target: "b", Kind: EdgePersistent}))

	assert.False(t, v.IsValidConnection(Connection{Source: "b", Target: "a"}))
	assert.ErrorIs(t, v.Check(Connection{Source: "b", Target: "a"}), ErrWouldCycle)
}

func TestValidator_TransitiveCycle(t *testing.T) {
	s, v := validatorFixture(t)
	require.NoError(t, s.AddEdges(
		Edge{ID: "ab", Source: "a", Target: "b", Kind: EdgePersistent},
		Edge{ID: "bc", Source: "b", Target: "c", Kind: EdgePersistent},
	))

	// c -> a would close a three-node cycle.
	assert.False(t, v.IsValidConnection(Connection{Source: "c", Target: "a"}))
	// c -> b is a direct two-node cycle through bc.
	assert.False(t, v.IsValidConnection(Connection{Source: "c", Target: "b"}))
	// a -> c is just a parallel path, fine.
	assert.True(t, v.IsValidConnection(Connection{Source: "a", Target: "c"}))
}

func TestValidator_TemporaryEdgesExcludedFromCycleCheck(t *testing.T) {
	s, v := validatorFixture(t)
	require.NoError(t, s.AddEdges(Edge{ID: "ab", Source: "a", Target: "b", Kind: EdgePersistent}))
	// A temporary b -> c must not extend the reachable set of the check.
	require.NoError(t, s.AddEdges(Edge{ID: "tmp", Source: "b", Target: "c", Kind: EdgeTemporary}))

	// c -> a cycles only through the temporary edge, so it is allowed.
	assert.True(t, v.IsValidConnection(Connection{Source: "c", Target: "a"}))
}

func TestValidator_RecomputesPerCall(t *testing.T) {
	s, v := validatorFixture(t)

	assert.True(t, v.IsValidConnection(Connection{Source: "b", Target: "a"}))

	// Graph changes between calls mid-drag; the next call must see it.
	require.NoError(t, s.AddEdges(Edge{ID: "ab", Source: "a", Target: "b", Kind: EdgePersistent}))
	assert.False(t, v.IsValidConnection(Connection{Source: "b", Target: "a"}))

	s.ApplyEdgeChanges([]EdgeChange{{Type: EdgeChangeRemove, ID: "ab"}})
	assert.True(t, v.IsValidConnection(Connection{Source: "b", Target: "a"}))
}
