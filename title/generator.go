// Package title derives short conversation titles from the first user
// message, in the language that message appears to be written in.
package title

import (
	"context"
	"fmt"
	"strings"

	"github.com/lollo21x/willpro-doot-inc/catalog"
	"github.com/lollo21x/willpro-doot-inc/chat"
)

// maxTitleWords caps the generated title length. Longer replies are cut, not
// rejected.
const maxTitleWords = 4

type language string

const (
	langItalian language = "italian"
	langEnglish language = "english"
	langFrench  language = "french"
	langSpanish language = "spanish"
	langGerman  language = "german"
)

// Common-word lists for language detection. Deliberately crude: the first
// message is usually short, and a wrong guess only affects the title's
// language.
var languageWords = map[language][]string{
	langItalian: {"il", "la", "di", "che", "e", "un", "una", "per", "con", "come", "sono", "hai", "ho", "cosa", "ciao", "grazie", "prego", "bene", "male", "molto", "poco", "grande", "piccolo"},
	langEnglish: {"the", "and", "of", "to", "a", "in", "for", "is", "on", "that", "by", "this", "with", "i", "you", "it", "not", "or", "be", "are", "from", "at", "as", "your", "all", "can", "how", "what", "why"},
	langFrench:  {"le", "de", "et", "à", "un", "il", "être", "en", "avoir", "que", "pour", "dans", "ce", "son", "une", "sur", "avec", "ne", "se", "pas", "tout", "plus", "par"},
	langSpanish: {"el", "la", "de", "que", "y", "a", "en", "un", "ser", "se", "no", "te", "lo", "le", "su", "por", "son", "con", "para", "al", "una", "del", "como", "muy"},
	langGerman:  {"der", "die", "und", "in", "den", "von", "zu", "das", "mit", "sich", "des", "auf", "für", "ist", "im", "dem", "nicht", "ein", "eine", "als", "auch", "es", "an", "wie", "oder", "aber"},
}

var languagePrompts = map[language]struct {
	system string
	user   string
}{
	langItalian: {
		system: "Sei un generatore di titoli. Analizza il contesto del primo messaggio dell'utente e genera un titolo breve e descrittivo per una conversazione chat. Il titolo deve essere di massimo 3-4 parole. Rispondi solo con il titolo, senza testo aggiuntivo o punteggiatura.",
		user:   "Analizza questo messaggio e genera un titolo di massimo 3-4 parole: %q",
	},
	langEnglish: {
		system: "You are a title generator. Analyze the context of the user's first message and generate a short, descriptive title for a chat conversation. The title must be maximum 3-4 words. Respond only with the title, no additional text or punctuation.",
		user:   "Analyze this message and generate a title of maximum 3-4 words: %q",
	},
	langFrench: {
		system: "Vous êtes un générateur de titres. Analysez le contexte du premier message de l'utilisateur et générez un titre court et descriptif pour une conversation de chat. Le titre doit contenir maximum 3-4 mots. Répondez uniquement avec le titre, sans texte supplémentaire ni ponctuation.",
		user:   "Analysez ce message et générez un titre de maximum 3-4 mots: %q",
	},
	langSpanish: {
		system: "Eres un generador de títulos. Analiza el contexto del primer mensaje del usuario y genera un título corto y descriptivo para una conversación de chat. El título debe tener máximo 3-4 palabras. Responde solo con el título, sin texto adicional ni puntuación.",
		user:   "Analiza este mensaje y genera un título de máximo 3-4 palabras: %q",
	},
	langGerman: {
		system: "Sie sind ein Titelgenerator. Analysieren Sie den Kontext der ersten Nachricht des Benutzers und erstellen Sie einen kurzen, beschreibenden Titel für ein Chat-Gespräch. Der Titel muss maximal 3-4 Wörter haben. Antworten Sie nur mit dem Titel, ohne zusätzlichen Text oder Interpunktion.",
		user:   "Analysieren Sie diese Nachricht und erstellen Sie einen Titel von maximal 3-4 Wörtern: %q",
	},
}

// Generator implements chat.TitleGenerator on top of a completion backend. It
// always uses the dedicated lightweight title model rather than the
// conversation's model.
type Generator struct {
	client chat.CompletionClient
}

// NewGenerator creates a title generator backed by client.
func NewGenerator(client chat.CompletionClient) *Generator {
	return &Generator{client: client}
}

// GenerateTitle produces a title of at most four words in the detected
// language of firstUserMessage. A failed completion is returned as an error;
// the caller decides what title to fall back to.
func (g *Generator) GenerateTitle(ctx context.Context, firstUserMessage string) (string, error) {
	lang := detectLanguage(firstUserMessage)
	prompts := languagePrompts[lang]

	messages := []chat.PromptMessage{
		{Role: chat.RoleSystem, Content: prompts.system},
		{Role: chat.RoleUser, Content: fmt.Sprintf(prompts.user, firstUserMessage)},
	}

	reply, err := g.client.Complete(ctx, messages, catalog.TitleModel)
	if err != nil {
		return "", fmt.Errorf("title completion failed: %w", err)
	}

	title := cleanTitle(reply)
	if title == "" {
		return "", fmt.Errorf("title completion returned no usable text")
	}
	return title, nil
}

// detectLanguage guesses the language of text by counting common-word hits.
// Ties and no-hits resolve to Italian.
func detectLanguage(text string) language {
	words := strings.Fields(strings.ToLower(text))

	counts := make(map[language]int, len(languageWords))
	for lang, list := range languageWords {
		for _, w := range words {
			for _, known := range list {
				if w == known {
					counts[lang]++
					break
				}
			}
		}
	}

	best := langItalian
	bestCount := counts[langItalian]
	// Fixed order so ties resolve deterministically.
	for _, lang := range []language{langEnglish, langFrench, langSpanish, langGerman} {
		if counts[lang] > bestCount {
			best = lang
			bestCount = counts[lang]
		}
	}
	return best
}

// cleanTitle strips quoting and clamps the reply to maxTitleWords words.
func cleanTitle(reply string) string {
	cleaned := strings.NewReplacer(`"`, "", "'", "", "“", "", "”", "").Replace(strings.TrimSpace(reply))
	words := strings.Fields(cleaned)
	if len(words) > maxTitleWords {
		words = words[:maxTitleWords]
	}
	return strings.Join(words, " ")
}
