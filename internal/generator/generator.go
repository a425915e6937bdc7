package generator

import (
	"math/rand"
	"time"

	"github.com/startovate/server/internal/models"
)

// Option sets offered by the form. Handlers validate incoming parameters
// against these before generating.
var (
	Industries          = []string{"Healthcare", "Education", "Finance", "Entertainment", "AI/ML", "GreenTech", "Travel"}
	Audiences           = []string{"Students", "Professionals", "Seniors", "Startups", "Businesses", "Individuals"}
	Technologies        = []string{"AI Tool", "Mobile App", "Web App", "IoT", "Blockchain", "SaaS Platform", "VR/AR"}
	Goals               = []string{"Disrupt the market", "Solve social issues", "Go viral", "Generate revenue", "Improve efficiency", "Enhance user experience"}
	MonetizationOptions = []string{"Subscription", "Ads", "Freemium", "Commission", "Direct Sales", "Licensing"}
	Regions             = []string{"India", "Global", "US", "Europe", "Asia", "Africa"}
)

var nameStems = []string{"Nexa", "Zeno", "Looma", "Orbit", "Glowr", "Synapse", "Apex", "Nova", "Vortex"}

var nameSuffixes = []string{"ly", "X", "ify", "Hub", "Flow", "Go", "AI"}

var taglines = []string{
	"Revolutionizing the future.", "Power through simplicity.",
	"Smart ideas, real impact.", "Innovation meets action.",
	"Your ultimate solution.", "Simplifying complex problems.",
}

var ideaByIndustry = map[string]string{
	"Healthcare":    "analyze health metrics and provide instant AI feedback for personalized wellness plans.",
	"Education":     "deliver smart, adaptive lessons and track learning patterns for optimized student growth.",
	"Finance":       "automate savings, budgets, and investments with intelligent predictive analytics.",
	"Entertainment": "create customized immersive experiences through interactive storytelling and AI-driven content.",
	"AI/ML":         "build intelligent solutions for automating daily tasks and enhancing productivity across industries.",
	"GreenTech":     "suggest eco-friendly habits and monitor environmental impact using real-time data.",
	"Travel":        "plan smart, personalized trips that adjust on-the-go based on preferences and real-time conditions.",
}

const fallbackIdea = "solve a pressing problem in the chosen domain."

const (
	minScore = 70
	maxScore = 95
)

// Params are the user-chosen inputs to one generation.
type Params struct {
	Industry     string   `json:"industry"`
	Audience     string   `json:"audience"`
	Tech         string   `json:"tech"`
	Goal         string   `json:"goal"`
	Monetization []string `json:"monetization"`
	Region       string   `json:"region"`
	TeamSize     int      `json:"teamSize"`
}

// Generator composes idea records from the fixed vocabularies. It has no
// side effects; the only non-determinism is the injected random source.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded from the wall clock. No reproducibility is
// promised; tests that need stable draws use NewWithSource.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate produces a new idea record. Name, tagline, and score are random
// draws; the idea sentence is a fixed lookup on industry with a fallback for
// unknown industries; everything else passes through unchanged.
func (g *Generator) Generate(p Params) models.IdeaRecord {
	idea, ok := ideaByIndustry[p.Industry]
	if !ok {
		idea = fallbackIdea
	}
	return models.IdeaRecord{
		Name:         g.pick(nameStems) + g.pick(nameSuffixes),
		Tagline:      g.pick(taglines),
		Industry:     p.Industry,
		Audience:     p.Audience,
		Tech:         p.Tech,
		Goal:         p.Goal,
		Monetization: p.Monetization,
		Region:       p.Region,
		Team:         p.TeamSize,
		Score:        minScore + g.rng.Intn(maxScore-minScore+1),
		Idea:         idea,
	}
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}
