package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Quit", "Discard the new profile?")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Quit")
	assert.Contains(t, clean, "Discard the new profile?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}

func TestNoticeDialogIncludesTitleAndMessage(t *testing.T) {
	out := NoticeDialog("Rust", "A systems programming language.")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Rust")
	assert.Contains(t, clean, "A systems programming language.")
	assert.Contains(t, clean, "esc: close")
}
