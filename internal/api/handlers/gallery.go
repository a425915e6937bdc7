package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/startovate/server/internal/api/services"
	"github.com/startovate/server/internal/models"
	"github.com/startovate/server/internal/repositories"
	"github.com/startovate/server/internal/utils"
)

// POST /api/v1/gallery
// SaveIdea godoc
// @Summary Save the current idea to the user's gallery
// @Description Appends the session's current idea unless an identical one is already saved
// @Tags Gallery
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 409 {object} utils.Payload
// @Router /api/v1/gallery [post]
func SaveIdea(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)

	idea, ok := Sessions.CurrentIdea(username)
	if !ok {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Generate an idea first to save it to your gallery",
		})
		return
	}

	err := repositories.Ideas.Append(username, idea)
	switch {
	case errors.Is(err, models.ErrAlreadySaved):
		utils.JSONResponse(w, http.StatusConflict, utils.Payload{
			Success: false,
			Message: "Current idea is already saved in your gallery",
		})
		return
	case err != nil:
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to save idea",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Idea saved to gallery!",
	})
}

// GET /api/v1/gallery
func ListIdeas(w http.ResponseWriter, r *http.Request) {
	ideas := repositories.Ideas.Load(usernameFromContext(r))
	if ideas == nil {
		ideas = []models.IdeaRecord{}
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: fmt.Sprintf("%d saved idea(s)", len(ideas)),
		Data:    ideas,
	})
}

// PATCH /api/v1/gallery/{index}/tagline
func UpdateTagline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid gallery position",
		})
		return
	}

	var input struct {
		Tagline string `json:"tagline"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	err = repositories.Ideas.UpdateTagline(usernameFromContext(r), index, input.Tagline)
	switch {
	case errors.Is(err, models.ErrIndexOutOfRange):
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "No saved idea at that position",
		})
		return
	case err != nil:
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to update tagline",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Tagline updated!",
	})
}

// GET /api/v1/gallery/{index}/pdf
// DownloadPitchPDF godoc
// @Summary Download one saved idea as a pitch PDF
// @Description Renders the saved idea at the given position as a single-page PDF
// @Tags Gallery
// @Produce application/pdf
// @Param index path int true "Gallery position"
// @Success 200 {file} binary
// @Failure 404 {object} utils.Payload
// @Router /api/v1/gallery/{index}/pdf [get]
func DownloadPitchPDF(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid gallery position",
		})
		return
	}

	ideas := repositories.Ideas.Load(usernameFromContext(r))
	if index < 0 || index >= len(ideas) {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "No saved idea at that position",
		})
		return
	}

	idea := ideas[index]
	pdfBytes, err := services.BuildPitchPDF(idea)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to render PDF",
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_pitch.pdf", idea.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	_, _ = w.Write(pdfBytes)
}
