// Package ssh adapts gliderlabs SSH sessions to tcell screens.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH channel.
type SessionTty struct {
	rw    io.ReadWriteCloser
	winCh <-chan gossh.Window
	done  <-chan struct{}

	mu     sync.Mutex
	window gossh.Window
	cb     func()
	watch  sync.Once
}

// NewSessionTty wraps a gliderlabs SSH session as a tcell Tty. pty holds the
// initial window size and winCh delivers later resizes until the session
// context ends.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return newTty(s, pty.Window, winCh, s.Context().Done())
}

func newTty(rw io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window, done <-chan struct{}) *SessionTty {
	return &SessionTty{rw: rw, window: win, winCh: winCh, done: done}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *SessionTty) Close() error                { return t.rw.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// closed by the server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest client window size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to run after every window change. The first
// call starts the watcher goroutine, which exits with the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()
	t.watch.Do(func() { go t.watchResize() })
}

func (t *SessionTty) watchResize() {
	for {
		select {
		case <-t.done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			cb := t.cb
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}
}
