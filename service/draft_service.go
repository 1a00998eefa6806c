package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"ausverity-backend/content"
	"ausverity-backend/directory"
	"ausverity-backend/models"
	"ausverity-backend/storage"

	"github.com/google/generative-ai-go/genai"
)

var (
	ErrInvalidDraftTarget = errors.New("invalid state or practice area for draft")
	ErrGenerationFailed   = errors.New("failed to generate content")
	ErrInvalidDraft       = errors.New("generated draft is not a valid content block")
)

const defaultDraftModel = "gemini-1.5-pro"

// DraftService drafts content blocks for pairs that have none. Drafts are
// written to storage for editorial review and are never served directly.
type DraftService struct {
	geminiClient *genai.Client
	model        string
	storage      storage.Storage
	draftPrefix  string
}

// DraftServiceOption is a functional option for DraftService
type DraftServiceOption func(*DraftService)

// DraftWithGeminiClient sets the Gemini client
func DraftWithGeminiClient(client *genai.Client) DraftServiceOption {
	return func(s *DraftService) {
		s.geminiClient = client
	}
}

// DraftWithModel sets the Gemini model name
func DraftWithModel(model string) DraftServiceOption {
	return func(s *DraftService) {
		if model != "" {
			s.model = model
		}
	}
}

// DraftWithStorage sets where drafts are saved
func DraftWithStorage(store storage.Storage, prefix string) DraftServiceOption {
	return func(s *DraftService) {
		s.storage = store
		s.draftPrefix = prefix
	}
}

// NewDraftService creates a new draft service
func NewDraftService(opts ...DraftServiceOption) *DraftService {
	s := &DraftService{model: defaultDraftModel, draftPrefix: "drafts"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DraftContentRequest represents a request to draft one content block
type DraftContentRequest struct {
	State        string
	PracticeArea string
	// Optional block for the same practice area in another state, used as a style reference
	Example *models.ContentBlock
}

// DraftContentResult represents a drafted content block
type DraftContentResult struct {
	Block models.ContentBlock
}

// DraftContent asks Gemini for a content block and validates the response
func (s *DraftService) DraftContent(ctx context.Context, req DraftContentRequest) (*DraftContentResult, error) {
	if s.geminiClient == nil {
		return nil, errors.New("gemini client not set")
	}

	prompt, err := buildDraftPrompt(req)
	if err != nil {
		return nil, err
	}

	model := s.geminiClient.GenerativeModel(s.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	block, err := parseDraft(text)
	if err != nil {
		return nil, err
	}

	return &DraftContentResult{Block: block}, nil
}

// SaveDraft writes a draft as a single-entry state document and returns its key
func (s *DraftService) SaveDraft(ctx context.Context, stateCode, slug string, block models.ContentBlock) (string, error) {
	if s.storage == nil {
		return "", errors.New("draft storage not set")
	}

	var buf bytes.Buffer
	if err := content.Encode(&buf, stateCode, map[string]models.ContentBlock{slug: block}); err != nil {
		return "", err
	}

	key := path.Join(s.draftPrefix, stateCode, slug+".yaml")
	if err := s.storage.Put(ctx, key, storage.ContentTypeFor(key), &buf); err != nil {
		return "", fmt.Errorf("failed to save draft: %w", err)
	}

	return key, nil
}

func buildDraftPrompt(req DraftContentRequest) (string, error) {
	state, ok := directory.GetStateByCode(req.State)
	if !ok {
		return "", fmt.Errorf("%w: state %q", ErrInvalidDraftTarget, req.State)
	}
	area, ok := directory.GetPracticeAreaBySlug(req.PracticeArea)
	if !ok {
		return "", fmt.Errorf("%w: practice area %q", ErrInvalidDraftTarget, req.PracticeArea)
	}

	var example string
	if req.Example != nil {
		raw, err := json.MarshalIndent(req.Example, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode example: %w", err)
		}
		example = fmt.Sprintf("\nSTYLE REFERENCE (same practice area, another jurisdiction):\n%s\n", raw)
	}

	return fmt.Sprintf(`You are an Australian legal writer preparing general legal information for a lawyer directory.

JURISDICTION: %s (%s)
PRACTICE AREA: %s
SCOPE: %s
%s
TASK:
Write a plain-English guide to %s in %s for members of the public.

OUTPUT REQUIREMENTS:
- Respond with a single JSON object and nothing else
- Shape: {"title": string, "summary": string, "sections": [{"heading": string, "paragraphs": [string], "items": [string]}], "legislation": [string]}
- The title must be "%s in %s"
- 2 to 4 sections, each with a heading and at least one paragraph or item
- Name the courts, tribunals and time limits that apply in %s
- List the key Acts in "legislation" with their year and jurisdiction, for example "Family Law Act 1975 (Cth)"
- General information only; do not give advice on any individual situation
`,
		state.Name, state.ShortName,
		area.Name,
		area.Description,
		example,
		strings.ToLower(area.Name), state.Name,
		area.Name, state.Name,
		state.ShortName,
	), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		// first usable candidate wins
		if sb.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(sb.String())
}

func parseDraft(text string) (models.ContentBlock, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var block models.ContentBlock
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &block); err != nil {
		return models.ContentBlock{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	if strings.TrimSpace(block.Title) == "" {
		return models.ContentBlock{}, fmt.Errorf("%w: missing title", ErrInvalidDraft)
	}
	if len(block.Sections) == 0 {
		return models.ContentBlock{}, fmt.Errorf("%w: no sections", ErrInvalidDraft)
	}
	for i, section := range block.Sections {
		if section.Heading == "" || (len(section.Paragraphs) == 0 && len(section.Items) == 0) {
			return models.ContentBlock{}, fmt.Errorf("%w: section %d is empty", ErrInvalidDraft, i)
		}
	}
	return block, nil
}
