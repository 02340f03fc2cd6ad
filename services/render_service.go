package services

import (
	"agent-portfolio-app/models"
	"bytes"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"time"

	"github.com/zeebo/blake3"
)

//go:embed templates/*.html
var templateFS embed.FS

// MessageDelay is how long the intake page shows its "please be patient"
// message after submit.
const MessageDelay = 3 * time.Second

// IntakePath is where the intake form page is served and posted.
const IntakePath = "/sqe"

type pageHeader struct {
	Heading string
	Class   string
}

type catalogPage struct {
	Header pageHeader
	Agents []models.AgentRecord
}

type intakePage struct {
	Header         pageHeader
	Action         string
	Instruction    models.FormField
	Optional       []models.FormField
	QueryKey       string
	Target         models.IntakeTarget
	MessageDelayMS int64
}

// RenderService renders the catalog and intake pages. It only holds parsed
// templates and is safe for concurrent use.
type RenderService struct {
	templates *template.Template
	intake    models.IntakeTarget
}

func NewRenderService(intake models.IntakeTarget) (*RenderService, error) {
	if err := intake.Validate(); err != nil {
		return nil, err
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &RenderService{
		templates: templates,
		intake:    intake,
	}, nil
}

// RenderCatalog renders the catalog page. An empty catalog renders the
// "No agents found." block instead of the grid.
func (s *RenderService) RenderCatalog(catalog models.Catalog) ([]byte, error) {
	return s.execute("catalog", catalogPage{
		Header: pageHeader{Heading: "AI Agent Portfolio", Class: "text-3xl"},
		Agents: catalog.Agents(),
	})
}

// RenderIntake renders the intake form page. The output never varies for a
// given service.
func (s *RenderService) RenderIntake() ([]byte, error) {
	return s.execute("intake", intakePage{
		Header:         pageHeader{Heading: "Quality Engineer Agent", Class: "text-xl"},
		Action:         IntakePath,
		Instruction:    models.InstructionField,
		Optional:       models.OptionalFields(),
		QueryKey:       models.IntakeQueryKey,
		Target:         s.intake,
		MessageDelayMS: MessageDelay.Milliseconds(),
	})
}

// IntakeTarget builds the navigation target for a submitted instruction
func (s *RenderService) IntakeTarget(instruction string) (string, error) {
	return s.intake.Build(instruction)
}

func (s *RenderService) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return buf.Bytes(), nil
}

// PageETag returns a strong entity tag for a rendered page
func PageETag(body []byte) string {
	sum := blake3.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
