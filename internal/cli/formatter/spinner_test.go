package formatter

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_DrawsMessageAndClearsLine(t *testing.T) {
	var out lockedBuffer
	stop := StartSpinner(&out, "Thinking...")
	stop()
	stop()

	got := out.String()
	assert.Contains(t, got, "Thinking...")
	assert.True(t, strings.HasSuffix(got, "\r\033[K"), "line not cleared: %q", got)
}
