package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/handlers"
	"github.com/hegedustibor/htgo-tts/voices"

	"github.com/startovate/server/internal/config"
	"github.com/startovate/server/internal/models"
)

var markdownChars = regexp.MustCompile("[*_`]")

// Narrator speaks idea and pitch texts synchronously on the server's audio
// output, the way the original form narrated to the local user.
type Narrator struct {
	speech *htgotts.Speech
}

func NewNarrator(cfg config.SpeechConfig) *Narrator {
	// htgo-tts wants the primary language subtag ("en"), not a full locale.
	lang, _, _ := strings.Cut(cfg.Language, "-")
	if lang == "" {
		log.Println("No narration language configured, falling back to English")
		lang = voices.English
	}
	return &Narrator{
		speech: &htgotts.Speech{
			Folder:   cfg.AudioDir,
			Language: lang,
			Handler:  &handlers.Native{},
		},
	}
}

// Speak strips markdown from the text and narrates it. Blocks until the
// utterance finishes.
func (n *Narrator) Speak(text string) error {
	return n.speech.Speak(CleanForSpeech(text))
}

// CleanForSpeech removes markdown metacharacters for better narration.
func CleanForSpeech(text string) string {
	return markdownChars.ReplaceAllString(text, "")
}

// IdeaNarration renders the spoken summary of one idea.
func IdeaNarration(idea models.IdeaRecord) string {
	return fmt.Sprintf(
		"Startup name is %s. Tagline: %s. Core idea: A %s for %s in the %s industry to %s. Vision: %s. Target Market: %s. Expected team size: %d members. Feasibility score: %d out of 100.",
		idea.Name, idea.Tagline, idea.Tech, idea.Audience, idea.Industry, idea.Idea,
		idea.Goal, idea.Region, idea.Team, idea.Score,
	)
}

// PitchNarration renders the spoken pitch-deck walkthrough of one idea.
func PitchNarration(idea models.IdeaRecord) string {
	return fmt.Sprintf(
		"Introducing %s, %s. Problem: In the %s sector, %s often face challenges related to %s. Solution: Our solution is a %s designed to %s. Market and Audience: We are targeting the %s market, specifically focusing on %s who are looking for %s. Business Model: Our primary monetization strategies include %s. Team and Feasibility: With a dedicated team of %d members, and a strong feasibility score of %d out of 100, we are poised for success.",
		idea.Name, idea.Tagline, idea.Industry, idea.Audience, PitchProblem(idea),
		idea.Tech, idea.Idea, idea.Region, idea.Audience, idea.Goal,
		strings.Join(idea.Monetization, ", "), idea.Team, idea.Score,
	)
}

// PitchProblem rephrases the idea sentence for the problem slide; the generic
// fallback sentence reads badly there, so it gets its own wording.
func PitchProblem(idea models.IdeaRecord) string {
	return strings.ReplaceAll(idea.Idea,
		"solve a pressing problem in the chosen domain.",
		"existing inefficiencies or lack of innovative solutions.")
}
