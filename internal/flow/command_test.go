package flow

import (
	"testing"

	"github.com/frigosoft/coldcalc/internal/models"
)

func TestDetectCommand(t *testing.T) {
	cases := []struct {
		name string
		lang models.Language
		text string
		kind CommandKind
		ok   bool
	}{
		{"help english", models.LanguageEnglish, "help", CommandHelp, true},
		{"question mark", models.LanguageEnglish, "?", CommandHelp, true},
		{"help turkish", models.LanguageTurkish, "yardım", CommandHelp, true},
		{"help german", models.LanguageGerman, "hilfe", CommandHelp, true},
		{"back english", models.LanguageEnglish, "back", CommandBack, true},
		{"back turkish", models.LanguageTurkish, "geri", CommandBack, true},
		{"back german ascii", models.LanguageGerman, "zurueck", CommandBack, true},
		{"show english", models.LanguageEnglish, "show", CommandShow, true},
		{"restart multi-word", models.LanguageEnglish, "please start over", CommandRestart, true},
		{"cancel english", models.LanguageEnglish, "cancel", CommandCancel, true},
		{"cancel turkish", models.LanguageTurkish, "iptal", CommandCancel, true},
		{"skip english", models.LanguageEnglish, "skip", CommandSkip, true},
		{"skip turkish", models.LanguageTurkish, "atla", CommandSkip, true},
		{"english fallback in turkish session", models.LanguageTurkish, "cancel", CommandCancel, true},
		{"punctuation tolerated", models.LanguageEnglish, "Cancel!", CommandCancel, true},
		{"plain answer is not a command", models.LanguageEnglish, "-18", CommandNone, false},
		{"dimension answer is not a command", models.LanguageEnglish, "5x4x3", CommandNone, false},
		{"command word inside another word", models.LanguageEnglish, "Stopover in Ankara", CommandNone, false},
		{"empty text", models.LanguageEnglish, "   ", CommandNone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := DetectCommand(tc.lang, tc.text)
			if ok != tc.ok {
				t.Fatalf("DetectCommand(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			}
			if ok && cmd.Kind != tc.kind {
				t.Errorf("DetectCommand(%q) kind = %v, want %v", tc.text, cmd.Kind, tc.kind)
			}
		})
	}
}

func TestDetectCommandEditArgument(t *testing.T) {
	cases := []struct {
		text string
		arg  int
	}{
		{"edit 3", 3},
		{"change answer 2", 2},
		{"edit", 0},
		{"düzelt 1", 1},
	}
	for _, tc := range cases {
		cmd, ok := DetectCommand(models.LanguageTurkish, tc.text)
		if !ok || cmd.Kind != CommandEdit {
			t.Fatalf("DetectCommand(%q) did not detect edit", tc.text)
		}
		if cmd.Arg != tc.arg {
			t.Errorf("DetectCommand(%q) arg = %d, want %d", tc.text, cmd.Arg, tc.arg)
		}
	}
}

func TestDetectStart(t *testing.T) {
	cases := []struct {
		text string
		lang models.Language
		ok   bool
	}{
		{"calculate", models.LanguageEnglish, true},
		{"I want to calculate a cold room", models.LanguageEnglish, true},
		{"hesapla", models.LanguageTurkish, true},
		{"soğuk oda lazım", models.LanguageTurkish, true},
		{"berechnen bitte", models.LanguageGerman, true},
		{"kühlraum anfrage", models.LanguageGerman, true},
		{"hello there", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		lang, ok := DetectStart(tc.text)
		if ok != tc.ok {
			t.Errorf("DetectStart(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			continue
		}
		if ok && lang != tc.lang {
			t.Errorf("DetectStart(%q) lang = %s, want %s", tc.text, lang, tc.lang)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Edit, Answer #3!")
	want := []string{"edit", "answer", "3"}
	if len(tokens) != len(want) {
		t.Fatalf("tokenize returned %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}
