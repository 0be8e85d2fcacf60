package consoles

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrintfWithPrefixes(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewWriterConsole(&out).(*writerConsole)
	c.now = func() time.Time { return time.Date(2020, 1, 1, 10, 11, 12, 0, time.UTC) }

	c.Printf("a %v\n", 1)
	c.PushPrefix("%v: ", "csv")
	c.Printf("b\n")
	c.PopPrefix()
	c.Printf("c\n")

	assert.Equal(t, "[10:11:12] a 1\n[10:11:12] csv: b\n[10:11:12] c\n", out.String())
}

func TestPopPrefixOnEmpty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewWriterConsole(&out)

	c.PopPrefix()
	c.Printf("x")

	assert.Contains(t, out.String(), "] x")
}

func TestPrepareDoesNotWrite(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewWriterConsole(&out).(*writerConsole)
	c.now = func() time.Time { return time.Date(2020, 1, 1, 10, 11, 12, 0, time.UTC) }
	c.PushPrefix("http: ")

	assert.Equal(t, "[10:11:12] http: ", c.Prepare(""))
	assert.Empty(t, out.String())
}
