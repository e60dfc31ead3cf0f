// Package advisor wraps the external Gemini text-generation call that turns
// the current stock levels into promotional offer suggestions. The call is
// stateless: no cache, no retry, and any failure degrades to zero insights.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gelato-pos/internal/config"
	"gelato-pos/internal/models"
)

const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel       = "gemini-3-flash-preview"
	defaultMaxInsights = 10
	maxFieldLen        = 600
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxInsights int
	HTTPClient  *http.Client
}

// New builds a client from configuration, filling in defaults.
func New(cfg config.GeminiConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	c := &Client{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		BaseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		MaxInsights: cfg.MaxInsights,
		HTTPClient:  &http.Client{Timeout: timeout},
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.MaxInsights <= 0 {
		c.MaxInsights = defaultMaxInsights
	}
	return c
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type insightsDoc struct {
	Insights []models.Insight `json:"insights"`
}

// FetchAdvice asks the model for promotional offers over the current stock.
// Every failure path returns an empty slice, never an error: the advisory
// view is best-effort by contract.
func (c *Client) FetchAdvice(ctx context.Context, stock []models.InventoryItem, transactions []models.Transaction) []models.Insight {
	prompt := buildPrompt(stock)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return []models.Insight{}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return []models.Insight{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("gemini call failed: %v", err)
		return []models.Insight{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("gemini call failed: status %d", resp.StatusCode)
		return []models.Insight{}
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return []models.Insight{}
	}
	if len(gen.Candidates) == 0 || len(gen.Candidates[0].Content.Parts) == 0 {
		return []models.Insight{}
	}

	var doc insightsDoc
	if err := json.Unmarshal([]byte(gen.Candidates[0].Content.Parts[0].Text), &doc); err != nil {
		return []models.Insight{}
	}
	return c.sanitize(doc.Insights)
}

// sanitize bounds the untrusted model output: entries without a title are
// dropped, oversized fields truncated, the list capped.
func (c *Client) sanitize(raw []models.Insight) []models.Insight {
	out := make([]models.Insight, 0, len(raw))
	for _, in := range raw {
		in.Title = truncate(strings.TrimSpace(in.Title))
		in.Description = truncate(strings.TrimSpace(in.Description))
		in.Impact = truncate(strings.TrimSpace(in.Impact))
		if in.Title == "" {
			continue
		}
		out = append(out, in)
		if len(out) == c.MaxInsights {
			break
		}
	}
	return out
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxFieldLen {
		return s
	}
	return string(runes[:maxFieldLen])
}

func buildPrompt(stock []models.InventoryItem) string {
	summaries := make([]string, 0, len(stock))
	for _, s := range stock {
		summaries = append(summaries, fmt.Sprintf("%s: %g%s em estoque (Mínimo: %g)", s.Name, s.Quantity, s.Unit, s.MinQuantity))
	}

	return fmt.Sprintf(`Como especialista em marketing para sorveterias, sua missão é criar 3 OFERTAS ESTRATÉGICAS para girar o estoque atual.

Analise o estoque: %s

Identifique itens com alta quantidade ou que pareçam parados.
Crie ofertas como: Combos "Leve 2 Pague 1", Happy Hour de Sabores específicos, Desconto Progressivo ou Brindes para itens em excesso.

Retorne o JSON com o campo "insights" contendo objetos com:
- title: Um nome chamativo para a oferta (ex: "Festival de Morango", "Combo Verão Raiz").
- description: Explicação detalhada da mecânica da oferta.
- impact: O benefício esperado (ex: "Redução de 30%% no estoque excedente de baunilha").

Seja criativo e focado em vendas rápidas.`, strings.Join(summaries, ", "))
}
