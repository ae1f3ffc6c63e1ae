package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/smallnest/flowcanvas/blob"
	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/log"
	"github.com/smallnest/flowcanvas/notify"
	"github.com/smallnest/flowcanvas/ops"
)

// UploadBucket is the destination bucket tag for clipboard image uploads.
const UploadBucket = "clipboard"

// Outcome reports which source a paste gesture resolved to.
type Outcome string

const (
	// OutcomeImage means a system-clipboard image became an image node.
	OutcomeImage Outcome = "image"

	// OutcomeHTMLImage means an <img> in an HTML payload became an image
	// node referencing its URL.
	OutcomeHTMLImage Outcome = "html_image"

	// OutcomeText means an HTML payload became a text node.
	OutcomeText Outcome = "text"

	// OutcomeNodes means the internally copied node set was pasted.
	OutcomeNodes Outcome = "nodes"

	// OutcomeNone means no source had content; the gesture was a no-op.
	OutcomeNone Outcome = "none"
)

// Bridge unifies system-clipboard paste and internal copied-node paste
// behind one gesture.
type Bridge struct {
	reader   Reader
	blobs    blob.Store
	svc      *ops.Service
	store    *graph.Store
	notifier notify.Notifier
	logger   log.Logger

	mu     sync.Mutex
	copied []graph.Node
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithNotifier routes upload failures to a notifier.
func WithNotifier(n notify.Notifier) BridgeOption {
	return func(b *Bridge) { b.notifier = n }
}

// WithLogger sets the bridge's logger.
func WithLogger(l log.Logger) BridgeOption {
	return func(b *Bridge) { b.logger = l }
}

// NewBridge creates a clipboard bridge over the given reader, blob store,
// operations service and graph store.
func NewBridge(reader Reader, blobs blob.Store, svc *ops.Service, store *graph.Store, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		reader:   reader,
		blobs:    blobs,
		svc:      svc,
		store:    store,
		notifier: notify.NopNotifier{},
		logger:   log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CopySelection captures the currently selected nodes for a later paste and
// returns how many were captured.
func (b *Bridge) CopySelection() int {
	nodes := b.store.SelectedNodes()
	b.mu.Lock()
	b.copied = nodes
	b.mu.Unlock()
	return len(nodes)
}

// Copy captures an explicit node set for a later paste.
func (b *Bridge) Copy(nodes []graph.Node) {
	copied := make([]graph.Node, 0, len(nodes))
	for _, n := range nodes {
		copied = append(copied, n.Clone())
	}
	b.mu.Lock()
	b.copied = copied
	b.mu.Unlock()
}

// Copied returns the currently captured node set.
func (b *Bridge) Copied() []graph.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]graph.Node, 0, len(b.copied))
	for _, n := range b.copied {
		out = append(out, n.Clone())
	}
	return out
}

// PasteFromShortcut handles the keyboard-shortcut entry point.
func (b *Bridge) PasteFromShortcut(ctx context.Context, viewport graph.Viewport, screenW, screenH float64) Outcome {
	return b.Paste(ctx, viewport, screenW, screenH)
}

// PasteFromEvent handles the native paste-event entry point.
func (b *Bridge) PasteFromEvent(ctx context.Context, viewport graph.Viewport, screenW, screenH float64) Outcome {
	return b.Paste(ctx, viewport, screenW, screenH)
}

// Paste resolves one paste gesture to exactly one outcome. System-clipboard
// content wins over internally copied nodes; when neither source has
// content the gesture is a no-op.
func (b *Bridge) Paste(ctx context.Context, viewport graph.Viewport, screenW, screenH float64) Outcome {
	center := viewport.LogicalCenter(screenW, screenH)

	if outcome := b.pasteSystemImage(ctx, center); outcome != OutcomeNone {
		return outcome
	}
	if outcome := b.pasteHTML(ctx, center); outcome != OutcomeNone {
		return outcome
	}

	b.mu.Lock()
	copied := b.copied
	b.mu.Unlock()
	if len(copied) > 0 {
		b.svc.PasteNodes(ctx, copied)
		return OutcomeNodes
	}
	return OutcomeNone
}

// pasteSystemImage uploads a clipboard image and turns it into an image
// node at the viewport center. Read failures are swallowed silently;
// clipboard support and permission prompts vary across browsers and are
// expected to fail intermittently.
func (b *Bridge) pasteSystemImage(ctx context.Context, center graph.Position) Outcome {
	img, err := b.reader.ReadImage(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoImage) {
			b.logger.Debug("clipboard image read failed: %v", err)
		}
		return OutcomeNone
	}

	obj, err := b.blobs.Put(ctx, UploadBucket, img.Data, img.MimeType)
	if err != nil {
		// Upload failure is actionable, unlike a clipboard denial. The
		// graph stays unchanged; no partial node is created.
		b.logger.Warn("clipboard image upload failed: %v", err)
		b.notifier.Error("Could not upload pasted image.")
		return OutcomeNone
	}

	_, err = b.svc.AddNode(ctx, "image", ops.AddOptions{
		Data:     map[string]any{"url": obj.URL, "mimeType": obj.MimeType},
		Position: &center,
		Origin:   "clipboard",
	})
	if err != nil {
		b.logger.Warn("paste image node: %v", err)
		return OutcomeNone
	}
	return OutcomeImage
}

// pasteHTML resolves an HTML clipboard payload: a referenced image becomes
// an image node, anything else is sanitized to plain text and becomes a
// text node.
func (b *Bridge) pasteHTML(ctx context.Context, center graph.Position) Outcome {
	payload, err := b.reader.ReadHTML(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoContent) {
			b.logger.Debug("clipboard html read failed: %v", err)
		}
		return OutcomeNone
	}

	if src := extractImageURL(payload); src != "" {
		_, err := b.svc.AddNode(ctx, "image", ops.AddOptions{
			Data:     map[string]any{"url": src},
			Position: &center,
			Origin:   "clipboard",
		})
		if err != nil {
			b.logger.Warn("paste html image node: %v", err)
			return OutcomeNone
		}
		return OutcomeHTMLImage
	}

	text := extractText(payload)
	if text == "" {
		return OutcomeNone
	}
	_, err = b.svc.AddNode(ctx, "text", ops.AddOptions{
		Data:     map[string]any{"text": text},
		Position: &center,
		Origin:   "clipboard",
	})
	if err != nil {
		b.logger.Warn("paste text node: %v", err)
		return OutcomeNone
	}
	return OutcomeText
}
