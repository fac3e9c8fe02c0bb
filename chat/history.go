package chat

import "github.com/lollo21x/willpro-doot-inc/catalog"

// HistoryLimit is the fixed context-window bound: at most this many messages
// (the in-flight one included) are sent with a request, oldest dropped first.
const HistoryLimit = 10

// imagePlaceholderText substitutes for empty text when a message carries only
// images, so multimodal backends always receive a text part first.
const imagePlaceholderText = "Please analyze this image."

// systemPrompt is the fixed instruction prepended to every request. It is not
// user-editable and never persisted as part of a conversation.
const systemPrompt = `You are a helpful AI assistant. Detect the user's preferred language within the first few messages and continue the conversation in that language without mentioning or switching to other languages, unless explicitly instructed to do so. Respond clearly and completely but without being verbose. Never start your response with line breaks, empty lines, or whitespace.

CRITICAL FORMATTING INSTRUCTIONS - ALWAYS FOLLOW THESE RULES:

1. **CODE BLOCKS**: When providing ANY code, programming examples, or technical content, you MUST use markdown code blocks with the EXACT language identifier. Examples:
   - HTML: ` + "```html" + `
   - CSS: ` + "```css" + `
   - JavaScript: ` + "```javascript" + `
   - TypeScript: ` + "```typescript" + `
   - Python: ` + "```python" + `
   - JSON: ` + "```json" + `
   - SQL: ` + "```sql" + `
   - And ALL other languages from this list: html, xml, svg, css, scss, sass, less, javascript, js, jsx, typescript, ts, tsx, json, yaml, yml, toml, markdown, md, graphql, sql, http, curl, bash, sh, shell, zsh, dockerfile, nginx, apache, ini, env, makefile, php, ruby, python, django, jinja, vue, svelte, astro, haskell, elm, ocaml, wasm, protobuf, plaintext, text, c, cpp, c++, csharp, cs, clojure, coffeescript, dart, diff, patch, elixir, erlang, go, golang, groovy, java, julia, kotlin, latex, tex, lisp, scheme, lua, matlab, octave, objective-c, objc, perl, powershell, ps1, py, r, rust, scala, plsql, swift, terraform, hcl, vala, verilog, vhdl, vim, viml

2. **TEXT FORMATTING**: Use these markdown elements when they improve readability:
   - **Bold text** (use double asterisks)
   - *Italic text* (use single asterisks)
   - ` + "`inline code`" + ` for variable names, function names, or short code snippets
   - > Blockquotes for important notes or citations
   - - Bullet points for lists
   - 1. Numbered lists when order matters
   - [Link text](URL) for hyperlinks
   - --- for section separators

3. **TABLES**: When presenting structured data, comparisons, or lists with multiple columns, ALWAYS use markdown table format:
   | Column 1 | Column 2 | Column 3 |
   |----------|----------|----------|
   | Data 1   | Data 2   | Data 3   |
   | Data 4   | Data 5   | Data 6   |

4. **CHECKBOXES**: For task lists or to-do items:
   - [ ] Uncompleted task
   - [x] Completed task

5. **HEADERS**: Use # for main headings, ## for subheadings, ### for subsections when organizing content.

IMPORTANT: These formatting rules are MANDATORY for code blocks and tables. Use other formatting naturally but prioritize code block syntax highlighting and proper table structure. The platform fully supports all these markdown features.`

// buildHistory assembles the outgoing request history from a message list.
//
// The list must already include the in-flight message when there is one. The
// fixed system instruction comes first, then the last HistoryLimit messages,
// oldest first. Messages with attached images become structured content lists
// only when the target model is multimodal; otherwise the images are silently
// omitted and plain text is sent (attached images remain stored and rendered
// locally regardless).
func buildHistory(messages []Message, modelInfo *catalog.ModelInfo) []PromptMessage {
	history := make([]PromptMessage, 0, HistoryLimit+1)
	history = append(history, PromptMessage{
		Role:    RoleSystem,
		Content: systemPrompt,
	})

	recent := messages
	if len(recent) > HistoryLimit {
		recent = recent[len(recent)-HistoryLimit:]
	}

	multimodal := modelInfo != nil && modelInfo.Multimodal

	for _, msg := range recent {
		role := RoleUser
		if msg.Sender == SenderAssistant {
			role = RoleAssistant
		}

		if multimodal && len(msg.Images) > 0 {
			// Text part always comes first, even when the message body is
			// empty; backends reject image-only content lists.
			parts := make([]ContentPart, 0, len(msg.Images)+1)
			text := msg.Content
			if text == "" {
				text = imagePlaceholderText
			}
			parts = append(parts, ContentPart{Type: PartTypeText, Text: text})
			for _, img := range msg.Images {
				parts = append(parts, ContentPart{Type: PartTypeImageURL, ImageURL: img})
			}
			history = append(history, PromptMessage{Role: role, Parts: parts})
			continue
		}

		history = append(history, PromptMessage{Role: role, Content: msg.Content})
	}

	return history
}
