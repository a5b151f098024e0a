package sommelier

import (
	"encoding/json"
	"fmt"
	"strings"

	"cellar/internal/model"
)

// HistoryWindow is how many trailing transcript turns are embedded in each
// request. Every request is self-contained; there is no server-side session.
const HistoryWindow = 6

// Greeting is the assistant turn every transcript starts with.
const Greeting = "Hello! I'm Dr. Vinny, your AI sommelier. How can I help you explore the Top 100 wines?"

// BuildPrompt assembles the single self-contained prompt for one chat turn:
// the fixed persona instruction, the full catalog as JSON, the trailing
// HistoryWindow transcript turns, and the latest user utterance.
func BuildPrompt(wines []model.Wine, transcript []model.ChatMessage, input string) string {
	history := transcript
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	var historyLines []string
	for _, msg := range history {
		speaker := "Dr. Vinny"
		if msg.Role == model.RoleUser {
			speaker = "User"
		}
		historyLines = append(historyLines, fmt.Sprintf("%s: %s", speaker, msg.Content))
	}

	catalogJSON, err := json.Marshal(exportableWines(wines))
	if err != nil {
		// A static catalog of plain values cannot fail to marshal; keep the
		// prompt usable regardless.
		catalogJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are an expert AI Wine Sommelier for Wine Spectator named Dr. Vinny.
Your knowledge is strictly limited to the provided JSON data about the Top 100 wines.
Answer the user's question based on this data. Be friendly, helpful, and concise.

Here is the full list of wines:
%s

Here is the recent conversation history for context:
%s

Based on all this information, please provide a response to the user's latest message: %q`,
		catalogJSON, strings.Join(historyLines, "\n"), input)
}

// promptWine is the catalog shape embedded in the prompt.
type promptWine struct {
	Name     string  `json:"name"`
	Winery   string  `json:"winery"`
	Varietal string  `json:"varietal"`
	Vintage  string  `json:"vintage"`
	Region   string  `json:"region"`
	Country  string  `json:"country"`
	Type     string  `json:"type"`
	Note     string  `json:"note"`
	Rank     int     `json:"rank"`
	Score    int     `json:"score"`
	Price    float64 `json:"price"`
}

func exportableWines(wines []model.Wine) []promptWine {
	out := make([]promptWine, len(wines))
	for i, w := range wines {
		out[i] = promptWine{
			Rank:     w.Rank,
			Name:     w.Name,
			Winery:   w.Winery,
			Varietal: w.Varietal,
			Vintage:  w.Vintage,
			Region:   w.Region,
			Country:  w.Country,
			Type:     w.Type,
			Score:    w.Score,
			Price:    w.Price,
			Note:     w.Description,
		}
	}
	return out
}

// cleanMarkdownWrapper strips a surrounding markdown code fence from a
// reply, which some models add despite instructions.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return content
	}
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[1 : len(lines)-1]
		return strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return content
}
