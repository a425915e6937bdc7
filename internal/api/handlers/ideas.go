package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"slices"

	"github.com/startovate/server/internal/api/services"
	"github.com/startovate/server/internal/config"
	"github.com/startovate/server/internal/generator"
	"github.com/startovate/server/internal/session"
	"github.com/startovate/server/internal/utils"
)

// Package-level collaborators, configured once at import like the rest of
// the process globals.
var (
	Sessions   = session.NewRegistry()
	Ideas      = generator.New()
	Mailer     = services.NewMailer(config.Envs.SMTP)
	Narrator   = services.NewNarrator(config.Envs.Speech)
	Recognizer = services.NewRecognizer(config.Envs.Speech)
)

// POST /api/v1/ideas/generate
// GenerateIdea godoc
// @Summary Generate a startup idea from the chosen parameters
// @Description Composes a random idea, stores it as the session's current idea, and emails it to the account address
// @Tags Ideas
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/ideas/generate [post]
func GenerateIdea(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var params generator.Params
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if msg, ok := validateParams(params); !ok {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: msg,
		})
		return
	}

	username := usernameFromContext(r)
	idea := Ideas.Generate(params)
	Sessions.SetCurrentIdea(username, idea)

	// The original emailed every freshly generated idea to the account
	// address; a delivery failure is a notice, not a request failure.
	emailSent := false
	emailNotice := ""
	if email := emailFromContext(r); email != "" {
		if err := Mailer.SendIdea(email, idea); err != nil {
			log.Println("Idea email not delivered:", err)
			emailNotice = "Email failed: " + err.Error()
		} else {
			emailSent = true
		}
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Idea generated!",
		Data: map[string]any{
			"idea":        idea,
			"emailSent":   emailSent,
			"emailNotice": emailNotice,
		},
	})
}

func validateParams(p generator.Params) (string, bool) {
	switch {
	case !slices.Contains(generator.Industries, p.Industry):
		return "Unknown industry", false
	case !slices.Contains(generator.Audiences, p.Audience):
		return "Unknown target audience", false
	case !slices.Contains(generator.Technologies, p.Tech):
		return "Unknown technology", false
	case !slices.Contains(generator.Goals, p.Goal):
		return "Unknown vision goal", false
	case !slices.Contains(generator.Regions, p.Region):
		return "Unknown target market", false
	case len(p.Monetization) == 0:
		return "Pick at least one monetization strategy", false
	case p.TeamSize < 1 || p.TeamSize > 50:
		return "Team size must be between 1 and 50", false
	}
	for _, m := range p.Monetization {
		if !slices.Contains(generator.MonetizationOptions, m) {
			return "Unknown monetization strategy", false
		}
	}
	return "", true
}

// GET /api/v1/ideas/current
func CurrentIdea(w http.ResponseWriter, r *http.Request) {
	idea, ok := Sessions.CurrentIdea(usernameFromContext(r))
	if !ok {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Please generate a startup idea first",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Current idea",
		Data:    idea,
	})
}

// POST /api/v1/ideas/narrate
// NarrateIdea godoc
// @Summary Narrate the current idea out loud
// @Description Speaks the idea summary, or the pitch-deck walkthrough when pitch is true
// @Tags Ideas
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/ideas/narrate [post]
func NarrateIdea(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var input struct {
		Pitch bool `json:"pitch"`
	}
	// An empty body means a plain idea narration
	_ = json.NewDecoder(r.Body).Decode(&input)

	idea, ok := Sessions.CurrentIdea(usernameFromContext(r))
	if !ok {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Please generate a startup idea first",
		})
		return
	}

	text := services.IdeaNarration(idea)
	if input.Pitch {
		text = services.PitchNarration(idea)
	}

	if err := Narrator.Speak(text); err != nil {
		log.Println("Narration failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Narration failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Narration complete!",
	})
}

// POST /api/v1/ideas/feedback
func RecordFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	transcript, err := Recognizer.Recognize(r.Context(), r.Body, r.Header.Get("Content-Type"))
	switch {
	case errors.Is(err, services.ErrUnrecognized):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Could not understand audio. Please try again.",
		})
		return
	case err != nil:
		utils.JSONResponse(w, http.StatusBadGateway, utils.Payload{
			Success: false,
			Message: "Speech recognition service is unavailable",
		})
		return
	}

	Sessions.SetTranscript(usernameFromContext(r), transcript)

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Thank you for your suggestion",
		Data:    map[string]string{"transcript": transcript},
	})
}

// POST /api/v1/ideas/email
func EmailIdea(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	idea, ok := Sessions.CurrentIdea(usernameFromContext(r))
	if !ok {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Please generate a startup idea first",
		})
		return
	}

	email := emailFromContext(r)
	if err := Mailer.SendIdea(email, idea); err != nil {
		log.Println("Idea email not delivered:", err)
		utils.JSONResponse(w, http.StatusBadGateway, utils.Payload{
			Success: false,
			Message: "Email failed. Please check the mail settings and try again.",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Email sent to " + email,
	})
}
