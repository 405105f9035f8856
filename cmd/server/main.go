// caverns-server serves the dungeon preview over SSH. Every session gets
// its own dungeon. Build:
//
//	go build -o caverns-server ./cmd/server
//
// Usage:
//
//	./caverns-server [-port 2222] [-key server_host_key] [-seed 0]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"emoji-caverns/internal/game"
	"emoji-caverns/internal/locale"
	internalssh "emoji-caverns/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	seed := flag.Int64("seed", 0, "Base seed; session n uses seed+n (0 picks a fresh seed per session)")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)
	srv := newServer(*seed)

	sshSrv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     srv.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Print(locale.T("SERVER_LISTENING", sshSrv.Addr))
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(sshSrv.ListenAndServe())
}

// allowedTerms lists the TERM values passed to terminfo; anything else
// falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

type server struct {
	baseSeed int64
	sessions atomic.Int64
}

func newServer(seed int64) *server { return &server{baseSeed: seed} }

// nextSeed returns the dungeon seed for the next session.
func (s *server) nextSeed() int64 {
	n := s.sessions.Add(1)
	if s.baseSeed == 0 {
		return time.Now().UnixNano()
	}
	return s.baseSeed + n - 1
}

// sessionTerm picks the TERM to use from the client's environment.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return defaultTerm
}

// handleSession is the gliderlabs SSH handler for one connection. It
// blocks until the viewer quits so the SSH session stays open.
func (s *server) handleSession(sess gossh.Session) {
	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "The preview requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	tty := internalssh.NewSessionTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(sess.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		return
	}

	seed := s.nextSeed()
	d, err := game.NewDungeon(seed, game.DefaultOptions())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(sess, "Dungeon setup failed: %v\n", err)
		return
	}
	log.Printf("session %s: seed %d", sanitizeName(sess.User()), seed)
	game.NewViewerWithScreen(screen, d).Run()
	log.Printf("session %s: closed", sanitizeName(sess.User()))
}

// maxNameBytes caps user names echoed into the server log.
const maxNameBytes = 16

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	signer, pemBytes, err := newHostKey()
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	if err := os.WriteFile(path, pemBytes, 0600); err != nil {
		log.Printf("could not persist host key: %v", err)
	}
	return signer
}

// newHostKey returns a fresh ed25519 signer and its PEM encoding.
func newHostKey() (gossh.Signer, []byte, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "caverns server")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal key: %w", err)
	}
	return signer, pem.EncodeToMemory(block), nil
}
