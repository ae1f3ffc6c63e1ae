package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallnest/flowcanvas/blob"
	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/kinds"
	"github.com/smallnest/flowcanvas/ops"
)

// countingNotifier records toasts.
type countingNotifier struct {
	errors []string
}

func (n *countingNotifier) Success(message string) {}
func (n *countingNotifier) Warning(message string) {}
func (n *countingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func bridgeFixture(t *testing.T, reader Reader) (*graph.Store, *blob.MemoryStore, *Bridge, *countingNotifier) {
	t.Helper()
	store := graph.NewStore()
	svc := ops.NewService(store, kinds.Default())
	blobs := blob.NewMemoryStore()
	notifier := &countingNotifier{}
	bridge := NewBridge(reader, blobs, svc, store, WithNotifier(notifier))
	return store, blobs, bridge, notifier
}

func viewportPaste(b *Bridge) Outcome {
	return b.Paste(context.Background(), graph.Viewport{Zoom: 1}, 1000, 800)
}

func TestPaste_SystemImage(t *testing.T) {
	reader := &StaticReader{Image: &Image{Data: []byte{0x89, 0x50}, MimeType: "image/png"}}
	store, blobs, bridge, _ := bridgeFixture(t, reader)

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeImage, outcome)

	nodes := store.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "image", nodes[0].Kind)
	// Placed at the viewport's logical center.
	assert.Equal(t, graph.Position{X: 500, Y: 400}, nodes[0].Position)
	assert.Equal(t, "image/png", nodes[0].Data["mimeType"])

	url, _ := nodes[0].Data["url"].(string)
	_, stored := blobs.Get(url)
	assert.True(t, stored)
}

func TestPaste_ImageWinsOverCopiedNodes(t *testing.T) {
	reader := &StaticReader{Image: &Image{Data: []byte{1}, MimeType: "image/png"}}
	store, _, bridge, _ := bridgeFixture(t, reader)

	bridge.Copy([]graph.Node{{ID: "c1", Kind: "text", Data: map[string]any{"text": "copied"}}})

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeImage, outcome)

	// Exactly one new node, and it is the image, not the copied text.
	nodes := store.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "image", nodes[0].Kind)
}

func TestPaste_CopiedNodesWhenNoSystemContent(t *testing.T) {
	store, _, bridge, _ := bridgeFixture(t, &StaticReader{})

	bridge.Copy([]graph.Node{
		{ID: "c1", Kind: "text", Position: graph.Position{X: 10, Y: 10}, Data: map[string]any{"text": "one"}},
		{ID: "c2", Kind: "image", Position: graph.Position{X: 20, Y: 20}, Data: map[string]any{"url": "u"}},
	})

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeNodes, outcome)

	nodes := store.Nodes()
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.NotEqual(t, "c1", n.ID)
		assert.NotEqual(t, "c2", n.ID)
		assert.True(t, n.Selected)
	}
}

func TestPaste_EmptyClipboardIsNoOp(t *testing.T) {
	store, _, bridge, notifier := bridgeFixture(t, &StaticReader{})

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeNone, outcome)
	assert.Empty(t, store.Nodes())
	assert.Empty(t, notifier.errors)
}

func TestPaste_ClipboardDenialIsSilent(t *testing.T) {
	reader := &StaticReader{Err: errors.New("permission denied")}
	store, _, bridge, notifier := bridgeFixture(t, reader)

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeNone, outcome)
	assert.Empty(t, store.Nodes())
	// Denied clipboard reads never surface to the user.
	assert.Empty(t, notifier.errors)
}

// wrappingReader returns the empty-clipboard sentinels wrapped with platform
// context, the way a real clipboard binding reports them.
type wrappingReader struct{}

func (wrappingReader) ReadImage(ctx context.Context) (*Image, error) {
	return nil, fmt.Errorf("navigator.clipboard.read: %w", ErrNoImage)
}

func (wrappingReader) ReadHTML(ctx context.Context) (string, error) {
	return "", fmt.Errorf("navigator.clipboard.read: %w", ErrNoContent)
}

func TestPaste_WrappedEmptySentinelsFallThrough(t *testing.T) {
	store, _, bridge, _ := bridgeFixture(t, wrappingReader{})

	bridge.Copy([]graph.Node{{ID: "c1", Kind: "text", Data: map[string]any{"text": "x"}}})

	// Wrapped no-content errors mean an empty clipboard, not a read
	// failure, so the paste falls through to the copied nodes.
	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeNodes, outcome)
	assert.Len(t, store.Nodes(), 1)
}

func TestPaste_DenialStillFallsBackToCopiedNodes(t *testing.T) {
	reader := &StaticReader{Err: errors.New("permission denied")}
	store, _, bridge, _ := bridgeFixture(t, reader)

	bridge.Copy([]graph.Node{{ID: "c1", Kind: "text", Data: map[string]any{"text": "x"}}})

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeNodes, outcome)
	assert.Len(t, store.Nodes(), 1)
}

func TestPaste_UploadFailureLeavesGraphUnchanged(t *testing.T) {
	reader := &StaticReader{Image: &Image{Data: []byte{1}, MimeType: "image/png"}}
	store := graph.NewStore()
	svc := ops.NewService(store, kinds.Default())
	blobs := blob.NewMemoryStore()
	blobs.FailWith = errors.New("bucket unavailable")
	notifier := &countingNotifier{}
	bridge := NewBridge(reader, blobs, svc, store, WithNotifier(notifier))

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeNone, outcome)
	// No partial node, and the failure surfaced as a toast.
	assert.Empty(t, store.Nodes())
	assert.Len(t, notifier.errors, 1)
}

func TestPaste_HTMLImage(t *testing.T) {
	reader := &StaticReader{HTML: `<div><img src="https://example.com/cat.png" alt="cat"></div>`}
	store, _, bridge, _ := bridgeFixture(t, reader)

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeHTMLImage, outcome)

	nodes := store.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "image", nodes[0].Kind)
	assert.Equal(t, "https://example.com/cat.png", nodes[0].Data["url"])
}

func TestPaste_HTMLTextIsSanitized(t *testing.T) {
	reader := &StaticReader{HTML: `<p>Hello <script>alert("x")</script><b>world</b> &amp; friends</p>`}
	store, _, bridge, _ := bridgeFixture(t, reader)

	outcome := viewportPaste(bridge)
	assert.Equal(t, OutcomeText, outcome)

	nodes := store.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "text", nodes[0].Kind)

	text, _ := nodes[0].Data["text"].(string)
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "script")
	assert.Contains(t, text, "Hello")
	assert.Contains(t, text, "world")
	assert.Contains(t, text, "&")
}

func TestPaste_BothEntryPointsBehaveTheSame(t *testing.T) {
	ctx := context.Background()
	viewport := graph.Viewport{Zoom: 1}

	for _, entry := range []string{"shortcut", "event"} {
		store, _, bridge, _ := bridgeFixture(t, &StaticReader{HTML: "<p>same</p>"})

		var outcome Outcome
		if entry == "shortcut" {
			outcome = bridge.PasteFromShortcut(ctx, viewport, 1000, 800)
		} else {
			outcome = bridge.PasteFromEvent(ctx, viewport, 1000, 800)
		}

		assert.Equal(t, OutcomeText, outcome, entry)
		assert.Len(t, store.Nodes(), 1, entry)
	}
}

func TestCopySelection(t *testing.T) {
	store, _, bridge, _ := bridgeFixture(t, &StaticReader{})
	store.AddNodes(
		graph.Node{ID: "a", Kind: "text", Selected: true},
		graph.Node{ID: "b", Kind: "text"},
	)

	assert.Equal(t, 1, bridge.CopySelection())
	copied := bridge.Copied()
	require.Len(t, copied, 1)
	assert.Equal(t, "a", copied[0].ID)
}

func TestExtractImageURL_RejectsUnsafeSchemes(t *testing.T) {
	assert.Equal(t, "", extractImageURL(`<img src="javascript:alert(1)">`))
	assert.Equal(t, "", extractImageURL(`<p>no image</p>`))
	assert.True(t, strings.HasPrefix(extractImageURL(`<img src="data:image/png;base64,AAAA">`), "data:"))
}
