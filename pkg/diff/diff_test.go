package diff

import (
	"strings"
	"testing"
)

func TestFrames_IdenticalContent(t *testing.T) {
	frame := "line1\nline2\nline3\n"

	result := Frames(frame, frame, "golden", "frame")

	if result != "" {
		t.Errorf("Expected empty diff for identical frames, got: %s", result)
	}
}

func TestFrames_SingleLineChange(t *testing.T) {
	result := Frames("a\nb\n", "a\nc\n", "golden", "frame")

	expected := "--- golden\n+++ frame\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n"
	if result != expected {
		t.Errorf("Unexpected diff:\n%s\nwant:\n%s", result, expected)
	}
}

func TestFrames_MultiLineChanges(t *testing.T) {
	expected := "line1\nline2\nline3\nline4\nline5\n"
	actual := "line1\nmodified2\nmodified3\nline4\nline5\n"

	result := Frames(expected, actual, "expected.txt", "actual.txt")

	if !strings.Contains(result, " line1") || !strings.Contains(result, " line4") {
		t.Error("Diff should include unchanged lines as context")
	}
	if !strings.Contains(result, "-line2") || !strings.Contains(result, "+modified3") {
		t.Error("Diff should show removed and added lines")
	}
}

func TestFrames_IgnoresStyling(t *testing.T) {
	styled := "\x1b[1mPlay\x1b[0m   \nQueue"
	plain := "Play\nQueue\n\n"

	if result := Frames(styled, plain, "styled", "plain"); result != "" {
		t.Errorf("Styling and trailing blanks should not count, got: %s", result)
	}
}

func TestFrames_Truncates(t *testing.T) {
	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		expected.WriteString("old\n")
		actual.WriteString("new\n")
	}

	result := Frames(expected.String(), actual.String(), "a", "b")

	if !strings.Contains(result, truncateMessage) {
		t.Error("Large diffs should be truncated")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(""); got != "\n" {
		t.Errorf("Normalize of empty frame = %q", got)
	}
	if got := Normalize("x  \n\n"); got != "x\n" {
		t.Errorf("Normalize trims trailing blanks, got %q", got)
	}
}
