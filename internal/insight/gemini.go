package insight

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"pico-pos/internal/model"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const analystInstruction = "You are a seasoned analyst advising small restaurant and cafe owners."

// GeminiClient implements Client on the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client authenticated with apiKey.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultModel
	}

	return &GeminiClient{client: client, model: modelName}, nil
}

func (c *GeminiClient) Analyze(ctx context.Context, stats model.SalesStats) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(analysisPrompt(stats)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(analystInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}
	return resp.Text(), nil
}

func (c *GeminiClient) Forecast(ctx context.Context, stats model.SalesStats) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(forecastPrompt(stats)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":     {Type: genai.TypeString},
					"revenue": {Type: genai.TypeNumber},
				},
				Required: []string{"day", "revenue"},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("forecast request failed: %w", err)
	}
	return resp.Text(), nil
}

func analysisPrompt(stats model.SalesStats) string {
	var b strings.Builder

	b.WriteString("Review today's sales for a small cafe and write a short report in English, formatted as Markdown.\n\n")
	fmt.Fprintf(&b, "Orders: %d\n", stats.OrderCount)
	fmt.Fprintf(&b, "Revenue: %s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Cost of goods: %s\n", stats.TotalCost.StringFixed(2))
	fmt.Fprintf(&b, "Net profit: %s\n", stats.NetProfit.StringFixed(2))
	if !stats.TotalRevenue.IsZero() {
		margin := stats.NetProfit.Div(stats.TotalRevenue).Shift(2)
		fmt.Fprintf(&b, "Margin: %s%%\n", margin.StringFixed(1))
	}

	b.WriteString("Units sold per item:\n")
	for _, name := range slices.Sorted(maps.Keys(stats.ItemCounts)) {
		fmt.Fprintf(&b, "- %s: %d\n", name, stats.ItemCounts[name])
	}

	b.WriteString("\nCover the financial picture, name the best sellers and finish with concrete suggestions to grow profit.")
	return b.String()
}

func forecastPrompt(stats model.SalesStats) string {
	return fmt.Sprintf(
		"So far the cafe has taken %d orders worth %s in revenue. "+
			"Treat today as a Friday and expect weekend traffic to run about 20%% above weekdays. "+
			"Predict revenue for each of the next 7 days and answer only with a JSON array of objects "+
			"with a \"day\" name and a numeric \"revenue\".",
		stats.OrderCount, stats.TotalRevenue.StringFixed(2),
	)
}
