package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/startovate/server/internal/models"
)

// BuildPitchPDF renders one idea as a single-page Letter document: bold
// title, then each field on its own line at a fixed position.
func BuildPitchPDF(idea models.IdeaRecord) ([]byte, error) {
	const (
		x          = 50.0
		lineHeight = 18.0
	)

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	y := 42.0
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(x, y, "Pitch Deck - "+idea.Name)
	y += lineHeight * 2

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		"Tagline: " + idea.Tagline,
		"Industry: " + idea.Industry,
		"Audience: " + idea.Audience,
		"Technology: " + idea.Tech,
		"Core Idea: " + idea.Idea,
		"Vision Goal: " + idea.Goal,
		"Target Market: " + idea.Region,
		"Monetization: " + strings.Join(idea.Monetization, ", "),
		fmt.Sprintf("Team Size: %d", idea.Team),
		fmt.Sprintf("Feasibility Score: %d / 100", idea.Score),
	} {
		pdf.Text(x, y, line)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pitch pdf: %w", err)
	}
	return buf.Bytes(), nil
}
