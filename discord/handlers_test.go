package discord

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

func TestCompletedNames(t *testing.T) {
	tests := map[string]struct {
		in       string
		complete string
		back     string
	}{
		"plain":               {in: "eagles-vs-cowboys", complete: "✅-eagles-vs-cowboys", back: "eagles-vs-cowboys"},
		"already complete":    {in: "✅-giants-vs-jets", complete: "✅-giants-vs-jets", back: "giants-vs-jets"},
		"bare check prefix":   {in: "✅done", complete: "✅done", back: "done"},
		"check in the middle": {in: "game-✅-notes", complete: "✅-game-✅-notes", back: "game-✅-notes"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := completedName(tc.in); got != tc.complete {
				t.Errorf("completedName(%q) = %q, expected %q", tc.in, got, tc.complete)
			}
			if got := uncompletedName(tc.complete); got != tc.back {
				t.Errorf("uncompletedName(%q) = %q, expected %q", tc.complete, got, tc.back)
			}
		})
	}
}

func TestTruncateName(t *testing.T) {
	long := strings.Repeat("x", 150)
	if got := completedName(long); len(got) != 100 {
		t.Errorf("name length = %d, expected the 100 character cap", len(got))
	}

	// A multi-byte character straddling the limit is dropped whole, never
	// sliced into invalid UTF-8.
	straddling := strings.Repeat("x", 95) + "✅✅"
	got := completedName(straddling) // the ✅- prefix pushes the second ✅ across the cap
	if !utf8.ValidString(got) {
		t.Errorf("truncated name is not valid UTF-8: %q", got)
	}
	if len(got) > 100 {
		t.Errorf("name length = %d, expected at most 100", len(got))
	}
	if !strings.HasSuffix(got, "x") {
		t.Errorf("partial trailing character not dropped cleanly: %q", got)
	}
}

func TestMentionsOrNone(t *testing.T) {
	if got := mentionsOrNone(nil); got != "_none_" {
		t.Errorf("empty list = %q", got)
	}
	if got := mentionsOrNone([]string{"u1", "u2"}); got != "<@u1> <@u2>" {
		t.Errorf("mentions = %q", got)
	}
}

func TestTextInputFindsValueAcrossRows(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "manualAddModal",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "week", Value: "3"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "away", Value: "Cowboys"},
			}},
		},
	}

	if got := textInput(data, "away"); got != "Cowboys" {
		t.Errorf("textInput(away) = %q", got)
	}
	if got := textInput(data, "missing"); got != "" {
		t.Errorf("unknown id should return empty, got %q", got)
	}
}
