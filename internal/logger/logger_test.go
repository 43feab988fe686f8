package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	saved := Logger
	defer SetLogger(saved)

	var buf bytes.Buffer
	SetLogger(log.New(&buf, "[test] ", 0))
	Logger.Printf("loaded %d words", 3)
	assert.Equal(t, "[test] loaded 3 words\n", buf.String())

	SetLogger(nil)
	Logger.Println("dropped")
	assert.Equal(t, "[test] loaded 3 words\n", buf.String())
}
