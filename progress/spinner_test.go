package progress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer written by the bubbletea goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Verify interface implementation
var _ Session = (*Spinner)(nil)

func TestSpinner_Protocol(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out)

	require.NoError(t, s.SendStatusMessage("go build ./..."))
	require.NoError(t, s.SendDoneMessage("built everything"))
	require.NoError(t, s.Activate())
	require.NoError(t, s.SendStatusMessage("go build ./... (linking)"))
	require.NoError(t, s.Deactivate())

	assert.Contains(t, out.String(), "built everything")
}

func TestSpinner_ReactivateAfterDeactivate(t *testing.T) {
	s := NewSpinner(&syncBuffer{})

	require.NoError(t, s.Activate())
	require.NoError(t, s.Deactivate())
	require.NoError(t, s.Activate())
	require.NoError(t, s.Deactivate())
}

func TestSpinner_DeactivateWithoutActivate(t *testing.T) {
	s := NewSpinner(&syncBuffer{})
	assert.ErrorIs(t, s.Deactivate(), ErrNotActive)
}

func TestSpinner_DoubleActivate(t *testing.T) {
	s := NewSpinner(&syncBuffer{})

	require.NoError(t, s.Activate())
	assert.ErrorIs(t, s.Activate(), ErrAlreadyActive)
	require.NoError(t, s.Deactivate())
}

func TestSpinner_ClosedSessionFails(t *testing.T) {
	s := NewSpinner(&syncBuffer{}, WithFrames(spinner.Line))
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.SendStatusMessage("x"), ErrSessionClosed)
	assert.ErrorIs(t, s.SendDoneMessage("x"), ErrSessionClosed)
	assert.ErrorIs(t, s.Activate(), ErrSessionClosed)
	assert.ErrorIs(t, s.Deactivate(), ErrSessionClosed)
}

func TestSpinner_CloseStopsActiveAnimation(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out)

	require.NoError(t, s.SendDoneMessage("finished"))
	require.NoError(t, s.Activate())
	require.NoError(t, s.Close())

	assert.Contains(t, out.String(), "finished")
	assert.ErrorIs(t, s.Activate(), ErrSessionClosed)
}

func TestSpinnerModel_View(t *testing.T) {
	m := newSpinnerModel("compiling", spinner.Line, NewSpinner(nil).style, 80)
	assert.Contains(t, m.View(), "compiling...")

	m.Update(statusMsg("linking"))
	assert.Contains(t, m.View(), "linking...")

	_, cmd := m.Update(finishMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, "✓ linking\n", m.View())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hello w...", truncate("hello world, again", 10))
	assert.Equal(t, "..", truncate("hello", 2))
	assert.Equal(t, "", truncate("hello", 0))
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.Equal(t, 80, terminalWidth(&bytes.Buffer{}))
}
