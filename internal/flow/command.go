package flow

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/frigosoft/coldcalc/internal/models"
)

// CommandKind enumerates the navigation commands a user can issue instead
// of answering the current question.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandHelp
	CommandBack
	CommandEdit
	CommandShow
	CommandRestart
	CommandCancel
	CommandSkip
)

// Command is a detected navigation command. Arg carries the 1-indexed
// question number for edit.
type Command struct {
	Kind CommandKind
	Arg  int
}

// commandSynonyms maps each command to its per-language synonym lists.
// Multi-word synonyms are matched as consecutive whole tokens. Matching is
// whole-token rather than substring so that a legitimate answer containing a
// command word inside another word (e.g. a city name) is not misread.
var commandSynonyms = map[CommandKind]map[models.Language][]string{
	CommandHelp: {
		models.LanguageEnglish: {"help", "commands", "?"},
		models.LanguageTurkish: {"yardım", "yardim", "komutlar"},
		models.LanguageGerman:  {"hilfe", "befehle"},
	},
	CommandBack: {
		models.LanguageEnglish: {"back", "previous", "prev"},
		models.LanguageTurkish: {"geri", "önceki", "onceki"},
		models.LanguageGerman:  {"zurück", "zurueck", "vorherige"},
	},
	CommandEdit: {
		models.LanguageEnglish: {"edit", "change", "modify"},
		models.LanguageTurkish: {"düzelt", "duzelt", "değiştir", "degistir"},
		models.LanguageGerman:  {"ändern", "aendern", "bearbeiten"},
	},
	CommandShow: {
		models.LanguageEnglish: {"show", "review", "answers", "summary"},
		models.LanguageTurkish: {"göster", "goster", "cevaplar", "özet", "ozet"},
		models.LanguageGerman:  {"anzeigen", "antworten", "übersicht", "uebersicht"},
	},
	CommandRestart: {
		models.LanguageEnglish: {"restart", "start over", "begin again"},
		models.LanguageTurkish: {"baştan", "bastan", "yeniden başla", "yeniden basla"},
		models.LanguageGerman:  {"neustart", "von vorne"},
	},
	CommandCancel: {
		models.LanguageEnglish: {"cancel", "stop", "quit", "exit"},
		models.LanguageTurkish: {"iptal", "vazgeç", "vazgec", "çık", "cik"},
		models.LanguageGerman:  {"abbrechen", "beenden", "stopp"},
	},
	CommandSkip: {
		models.LanguageEnglish: {"skip", "next", "default"},
		models.LanguageTurkish: {"atla", "geç", "gec", "varsayılan", "varsayilan"},
		models.LanguageGerman:  {"überspringen", "ueberspringen", "weiter"},
	},
}

// startKeywords open a new consultation; the matching keyword's language
// becomes the session language.
var startKeywords = map[models.Language][]string{
	models.LanguageEnglish: {"calculate", "calculation", "cold room", "start"},
	models.LanguageTurkish: {"hesapla", "hesaplama", "soğuk oda", "soguk oda"},
	models.LanguageGerman:  {"berechnen", "berechnung", "kühlraum", "kuehlraum"},
}

// tokenize lowercases the text and splits it into letter/digit runs, plus
// the bare "?" which counts as a help token.
func tokenize(text string) []string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "?" {
		return []string{"?"}
	}
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsTokens reports whether want (itself tokenized) appears as a
// consecutive token sequence in have.
func containsTokens(have []string, want string) (bool, int) {
	wantTokens := tokenize(want)
	if len(wantTokens) == 0 {
		return false, -1
	}
	for i := 0; i+len(wantTokens) <= len(have); i++ {
		match := true
		for j, w := range wantTokens {
			if have[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true, i + len(wantTokens)
		}
	}
	return false, -1
}

// DetectCommand checks the utterance against the synonym table for the
// session language plus the English fallback set. Command detection takes
// precedence over answer processing.
func DetectCommand(lang models.Language, text string) (Command, bool) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Command{}, false
	}
	if tokens[0] == "?" {
		return Command{Kind: CommandHelp}, true
	}

	for _, kind := range []CommandKind{
		CommandHelp, CommandBack, CommandEdit, CommandShow,
		CommandRestart, CommandCancel, CommandSkip,
	} {
		synonyms := commandSynonyms[kind][lang]
		if lang != models.LanguageEnglish {
			synonyms = append(append([]string{}, synonyms...), commandSynonyms[kind][models.LanguageEnglish]...)
		}
		for _, syn := range synonyms {
			ok, after := containsTokens(tokens, syn)
			if !ok {
				continue
			}
			cmd := Command{Kind: kind}
			if kind == CommandEdit {
				cmd.Arg = editArgument(tokens, after)
			}
			return cmd, true
		}
	}
	return Command{}, false
}

// editArgument pulls the 1-indexed question number following an edit
// synonym; 0 means no argument was given.
func editArgument(tokens []string, from int) int {
	for i := from; i < len(tokens); i++ {
		if n, err := strconv.Atoi(tokens[i]); err == nil {
			return n
		}
	}
	return 0
}

// DetectStart reports whether the utterance opens a consultation and in
// which language.
func DetectStart(text string) (models.Language, bool) {
	tokens := tokenize(text)
	for _, lang := range []models.Language{models.LanguageTurkish, models.LanguageGerman, models.LanguageEnglish} {
		for _, kw := range startKeywords[lang] {
			if ok, _ := containsTokens(tokens, kw); ok {
				return lang, true
			}
		}
	}
	return "", false
}
