package kinds

import (
	"sync"

	"github.com/smallnest/flowcanvas/graph"
)

// Built-in node kinds.
const (
	Text       = "text"
	Image      = "image"
	Audio      = "audio"
	Video      = "video"
	Transcribe = "transcribe"
	Transform  = "transform"
)

// Definition bundles everything the engine needs to know about one kind.
type Definition struct {
	// Name is the kind tag.
	Name string

	// DefaultData is the initial payload for new nodes of this kind.
	DefaultData map[string]any

	// FeedsOnly restricts which kinds this kind's output may connect to.
	// Nil means it may feed any registered kind; an empty non-nil slice
	// means it may feed none.
	FeedsOnly []string
}

// Registry is a thread-safe kind registry implementing graph.KindRegistry.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Definition
}

var _ graph.KindRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Definition)}
}

// Register adds or replaces a kind definition.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[def.Name] = def
}

// Known reports whether kind is registered. The placeholder pseudo-kind is
// always known.
func (r *Registry) Known(kind string) bool {
	if kind == graph.KindPlaceholder {
		return true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kinds[kind]
	return ok
}

// DefaultData returns a copy of the kind's initial data payload.
func (r *Registry) DefaultData(kind string) map[string]any {
	r.mu.RLock()
	def, ok := r.kinds[kind]
	r.mu.RUnlock()
	if !ok || def.DefaultData == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(def.DefaultData))
	for k, v := range def.DefaultData {
		out[k] = v
	}
	return out
}

// CanConnect reports whether sourceKind may feed targetKind. Unknown kinds
// never connect, and placeholders never participate; a placeholder's
// temporary edge is promoted separately once the user picks a real kind.
func (r *Registry) CanConnect(sourceKind, targetKind string) bool {
	if sourceKind == graph.KindPlaceholder || targetKind == graph.KindPlaceholder {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	source, ok := r.kinds[sourceKind]
	if !ok {
		return false
	}
	if _, ok := r.kinds[targetKind]; !ok {
		return false
	}
	if source.FeedsOnly == nil {
		return true
	}
	for _, allowed := range source.FeedsOnly {
		if allowed == targetKind {
			return true
		}
	}
	return false
}

// Default returns a registry preloaded with the built-in kinds and their
// compatibility rules. Audio and video producers may only feed a
// transcription consumer; everything else may feed any kind.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Definition{
		Name:        Text,
		DefaultData: map[string]any{"text": ""},
	})
	r.Register(Definition{
		Name:        Image,
		DefaultData: map[string]any{"url": "", "mimeType": ""},
	})
	r.Register(Definition{
		Name:        Audio,
		DefaultData: map[string]any{"url": "", "mimeType": ""},
		FeedsOnly:   []string{Transcribe},
	})
	r.Register(Definition{
		Name:        Video,
		DefaultData: map[string]any{"url": "", "mimeType": ""},
		FeedsOnly:   []string{Transcribe},
	})
	r.Register(Definition{
		Name:        Transcribe,
		DefaultData: map[string]any{"text": ""},
	})
	r.Register(Definition{
		Name:        Transform,
		DefaultData: map[string]any{"instructions": ""},
	})
	return r
}
