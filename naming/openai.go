package naming

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/hupe1980/tabgroup"
	"github.com/hupe1980/tabgroup/model"
)

const systemPrompt = "You name groups of browser tabs. Respond only with the requested JSON."

// OpenAINamer names all clusters with a single chat completion call. The
// prompt lists every cluster's tab titles and asks for a JSON array of
// names, one per cluster, in order.
type OpenAINamer struct {
	client openai.Client
	model  openai.ChatModel
}

// OpenAIOption configures an OpenAINamer.
type OpenAIOption func(*OpenAINamer)

// WithModel overrides the chat model.
func WithModel(model openai.ChatModel) OpenAIOption {
	return func(n *OpenAINamer) {
		n.model = model
	}
}

// NewOpenAINamer creates a namer using the given API key.
func NewOpenAINamer(apiKey string, optFns ...OpenAIOption) *OpenAINamer {
	n := &OpenAINamer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4oMini,
	}
	for _, fn := range optFns {
		fn(n)
	}
	return n
}

// NameClusters implements Namer.
func (n *OpenAINamer) NameClusters(ctx context.Context, clusters []model.Cluster, lookup tabgroup.TabLookup) (map[string]string, error) {
	if len(clusters) == 0 {
		return map[string]string{}, nil
	}

	completion, err := n.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(clusters, lookup)),
		},
		Model:       n.model,
		Temperature: openai.Float(0.2),
	})
	if err != nil {
		return nil, fmt.Errorf("openai naming: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai naming: empty response")
	}

	names, err := parseNames(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	// Associate names with cluster ids by order; a short response names
	// only the leading clusters.
	out := make(map[string]string, len(clusters))
	for i, c := range clusters {
		if i >= len(names) {
			break
		}
		out[c.ID] = strings.TrimSpace(names[i])
	}
	return out, nil
}

// buildPrompt lists every cluster's tab titles and asks for one 2-3 word
// category name per cluster, returned as a JSON array in cluster order.
func buildPrompt(clusters []model.Cluster, lookup tabgroup.TabLookup) string {
	var b strings.Builder

	b.WriteString("Analyze these browser tab clusters and suggest a 2-3 word category name for each cluster that best describes their common theme:\n\n")

	for i, c := range clusters {
		fmt.Fprintf(&b, "Cluster %d:\n", i+1)
		for _, id := range c.TabIDs {
			if tab, ok := lookup.Tab(id); ok {
				fmt.Fprintf(&b, "  - %s\n", tab.Name)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(`Examples of good category names: "AI Tools", "Web Development", "News & Media", "Productivity Apps", "Travel & Weather", "Shopping & Finance", "Sports", "Entertainment", "Education", "Programming & Tech"`)
	b.WriteString("\n\nReturn a JSON array of strings, with each string being a cluster name. Ensure the order of names matches the order of clusters in the prompt.")

	return b.String()
}

// parseNames extracts the JSON array of names, tolerating a fenced code
// block around it.
func parseNames(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var names []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &names); err != nil {
		return nil, fmt.Errorf("openai naming: parse response: %w", err)
	}
	return names, nil
}
