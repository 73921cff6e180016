package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrNoToken reports that a token source has nothing to offer. Chains move
// on to the next source when they see it.
var ErrNoToken = errors.New("no access token available")

// TokenSource yields a bearer token for the invoice API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// EnvToken reads the token from an environment variable.
type EnvToken struct {
	Name string
}

// Token implements TokenSource.
func (e EnvToken) Token(context.Context) (string, error) {
	if tok := strings.TrimSpace(os.Getenv(e.Name)); tok != "" {
		return tok, nil
	}
	return "", ErrNoToken
}

// FileToken reads the token from a file, typically one written by
// CachedToken on an earlier run.
type FileToken struct {
	Path string
}

// Token implements TokenSource.
func (f FileToken) Token(context.Context) (string, error) {
	if f.Path == "" {
		return "", ErrNoToken
	}
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	if tok := strings.TrimSpace(string(b)); tok != "" {
		return tok, nil
	}
	return "", ErrNoToken
}

// PromptToken asks for the token on a terminal with echo disabled.
type PromptToken struct {
	In  *os.File
	Out io.Writer
}

// Token implements TokenSource. It fails when In is not a terminal.
func (p PromptToken) Token(context.Context) (string, error) {
	fd := int(p.In.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompting for token: %w", ErrNoToken)
	}

	_, _ = fmt.Fprint(p.Out, "Access token: ")
	b, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(p.Out)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	if tok := strings.TrimSpace(string(b)); tok != "" {
		return tok, nil
	}
	return "", ErrNoToken
}

// ChainToken tries each source in order and returns the first token found.
// Silent sources go first, interactive ones last.
type ChainToken []TokenSource

// Token implements TokenSource. A source failing with anything other than
// ErrNoToken stops the chain.
func (c ChainToken) Token(ctx context.Context) (string, error) {
	for _, src := range c {
		tok, err := src.Token(ctx)
		if err == nil {
			return tok, nil
		}
		if !errors.Is(err, ErrNoToken) {
			return "", err
		}
	}
	return "", ErrNoToken
}

// CachedToken remembers the first token its source yields. When Path is set
// the token is also written there so later runs can pick it up silently.
type CachedToken struct {
	Source TokenSource
	Path   string

	mu    sync.Mutex
	token string
}

// Token implements TokenSource.
func (c *CachedToken) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	tok, err := c.Source.Token(ctx)
	if err != nil {
		return "", err
	}
	c.token = tok

	if c.Path != "" {
		if err := writeTokenFile(c.Path, tok); err != nil {
			return "", err
		}
	}
	return tok, nil
}

// Invalidate drops the cached token so the next call asks the source again.
func (c *CachedToken) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func writeTokenFile(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}
