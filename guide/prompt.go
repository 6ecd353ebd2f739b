package guide

import (
	"fmt"
	"strings"
)

// systemPrompt returns the system message that frames the model as a travel
// agent and pins down the required vibe-board sections. The destination is
// substituted verbatim (uppercased in the title); no validation happens here.
func systemPrompt(destination string) string {
	return fmt.Sprintf(`You are a Travel Agent. Create a comprehensive travel vibe board for any destination.

Your response should include:

🌍 **DESTINATION VIBE BOARD FOR %s**

📍 **Cultural Essentials:**
Present the essential phrases in a neat table format:
| Phrase | Pronunciation | Meaning |
|--------|---------------|---------|
| [Local phrase] | [phonetic guide] | [English meaning] |

Also include:
- Key cultural etiquette tips
- Local customs travelers should know

🎵 **Sound of the City:**
Present the music recommendations in a table format:
| Artist/Song | Genre | Description |
|-------------|-------|-------------|
| [Artist name] | [Genre] | [Brief description] |

Also include:
- Popular music genres in the area
- Spotify playlist suggestions

🍽️ **Taste Adventure:**
- 5-7 must-try local dishes with brief descriptions
- Best food markets or street food areas
- Local dining customs

📅 **First Day Flow:**
- A realistic first-day plan (morning, afternoon, evening)
- Transportation tips
- Budget considerations
- Key logistics (where to go, how long to spend)

Make it visually appealing with emojis and clear sections. Keep it practical and engaging!`,
		strings.ToUpper(destination))
}

// userPrompt returns the short task message naming the destination.
func userPrompt(destination string) string {
	return fmt.Sprintf("Create a complete travel vibe board for %s. Make it comprehensive and visually appealing!", destination)
}

// BuildMessages renders the two-message conversation for a destination. The
// system message always precedes the user message; the remote model relies on
// that ordering to separate role framing from the task.
func BuildMessages(destination string) []Message {
	return []Message{
		{Role: RoleSystem, Content: systemPrompt(destination)},
		{Role: RoleUser, Content: userPrompt(destination)},
	}
}
