// Package catalog holds the static model registry.
//
// Every model is addressed by its OpenRouter identifier
// ("vendor/model-name:variant"). The capability flags drive prompt shaping
// (multimodal content parts, the image-generation send path) and UI
// affordances; they are never mutated at runtime.
package catalog

import "strings"

// ModelInfo describes one entry of the registry.
type ModelInfo struct {
	ID             string
	Name           string
	Description    string
	Multimodal     bool
	Primary        bool
	Reasoning      bool
	Base           bool
	Coder          bool
	ImageGenerator bool
}

// Available is the full registry, primary models first.
var Available = []ModelInfo{
	{
		ID:          "openai/gpt-oss-20b:free",
		Name:        "GPT-OSS 20B",
		Description: "Open-weight MoE model with 20B parameters, designed for general tasks with high efficiency.",
		Primary:     true,
		Reasoning:   true,
	},
	{
		ID:          "deepseek/deepseek-chat-v3.1:free",
		Name:        "DeepSeek V3.1",
		Description: "Updated model in the V3 series, with thinking mode and better tool handling.",
		Primary:     true,
		Base:        true,
	},
	{
		ID:          "google/gemma-3-4b-it:free",
		Name:        "Gemma 3 4B",
		Description: "Lightweight Google Gemma model, instruction-tuned and suitable for low-resource devices.",
		Primary:     true,
		Base:        true,
	},
	{
		ID:          "deepseek/deepseek-r1-0528:free",
		Name:        "DeepSeek R1",
		Description: "DeepSeek model dedicated to step-by-step reasoning, strong in mathematics and programming.",
		Reasoning:   true,
	},
	{
		ID:          "google/gemma-3-12b-it:free",
		Name:        "Gemma 3 12B",
		Description: "Medium model in the Gemma 3 family, balanced between performance and resource consumption.",
		Base:        true,
	},
	{
		ID:          "google/gemma-3-27b-it:free",
		Name:        "Gemma 3 27B",
		Description: "Large model in the Gemma 3 series, with enhanced reasoning capabilities.",
		Base:        true,
	},
	{
		ID:          "google/gemma-3n-e2b-it:free",
		Name:        "Gemma 3N E2B",
		Description: "Compact model in the Gemma 3N line, designed for low-latency edge execution.",
		Base:        true,
	},
	{
		ID:          "google/gemma-3n-e4b-it:free",
		Name:        "Gemma 3N E4B",
		Description: "Reduced model in the Gemma 3N line, optimized for efficiency on mobile devices.",
		Base:        true,
	},
	{
		ID:          "google/gemini-2.0-flash-exp:free",
		Name:        "Gemini 2.0 Flash Experimental",
		Description: "Experimental Google Gemini model, designed for high speed and visual support.",
		Multimodal:  true,
	},
	{
		ID:             "google/gemini-2.5-flash-image-preview:free",
		Name:           "Gemini 2.5 Flash Image",
		Description:    "Google Gemini preview model that produces images from text prompts.",
		Multimodal:     true,
		ImageGenerator: true,
	},
	{
		ID:          "moonshotai/kimi-k2:free",
		Name:        "Kimi K2",
		Description: "Moonshot AI MoE model, scalable and suitable for large-scale general tasks.",
		Base:        true,
	},
	{
		ID:          "moonshotai/kimi-vl-a3b-thinking:free",
		Name:        "Kimi VL A3B Thinking",
		Description: "Multimodal Moonshot AI model, capable of advanced reasoning on visual inputs.",
		Reasoning:   true,
	},
	{
		ID:          "z-ai/glm-4.5-air:free",
		Name:        "GLM-4.5 Air",
		Description: "Lightweight model in the GLM-4.5 series by Zhipu, designed for fast and efficient responses.",
		Base:        true,
	},
	{
		ID:          "qwen/qwen3-4b:free",
		Name:        "Qwen3 4B",
		Description: "Compact Qwen3 model with 4B parameters, optimized for dialogue and general tasks.",
		Base:        true,
	},
	{
		ID:          "qwen/qwen3-8b:free",
		Name:        "Qwen3 8B",
		Description: "Intermediate Qwen3 model with 8B parameters, suitable for multitasking and general use.",
		Base:        true,
	},
	{
		ID:          "qwen/qwen3-14b:free",
		Name:        "Qwen3 14B",
		Description: "Mid-to-high-end Qwen3 model, with good comprehension and reasoning capabilities.",
		Base:        true,
	},
	{
		ID:          "qwen/qwen3-coder:free",
		Name:        "Qwen3 Coder",
		Description: "Qwen3 model specialized in programming and software development.",
		Coder:       true,
	},
	{
		ID:          "mistralai/devstral-small-2505:free",
		Name:        "Devstral Small",
		Description: "Mistral AI model designed for software engineering and codebase management.",
		Coder:       true,
	},
	{
		ID:          "mistralai/mistral-nemo:free",
		Name:        "Mistral Nemo",
		Description: "12B Mistral AI model, with support for long contexts and coding tasks.",
		Base:        true,
	},
	{
		ID:          "mistralai/mistral-small-3.2-24b-instruct:free",
		Name:        "Mistral Small 3.2",
		Description: "24B parameter Mistral model, instruction-tuned and optimized for multitasking.",
		Base:        true,
	},
	{
		ID:          "deepseek/deepseek-r1-0528-qwen3-8b:free",
		Name:        "DeepSeek R1 Qwen",
		Description: "Distillation of the R1 model on Qwen architecture, lighter but still reasoning-oriented.",
		Reasoning:   true,
	},
	{
		ID:          "meta-llama/llama-3.2-11b-vision-instruct:free",
		Name:        "Llama 3.2",
		Description: "Multimodal Meta model, capable of interpreting images and texts.",
		Multimodal:  true,
	},
	{
		ID:          "meta-llama/llama-4-scout:free",
		Name:        "Llama 4 Scout",
		Description: "Meta model with MoE architecture, efficient with very long contexts.",
		Base:        true,
	},
	{
		ID:          "moonshotai/kimi-dev-72b:free",
		Name:        "Kimi Dev 72B",
		Description: "Moonshot AI model with 72B parameters, specialized in software development and coding.",
		Coder:       true,
	},
	{
		ID:          "openai/gpt-oss-120b:free",
		Name:        "GPT-OSS 120B",
		Description: "Open-weight MoE model with 120B parameters, designed for complex reasoning and extended contexts.",
		Reasoning:   true,
	},
	{
		ID:          "meta-llama/llama-4-maverick:free",
		Name:        "Llama 4 Maverick",
		Description: "Advanced Meta Llama 4 model, optimized for reasoning and programming.",
		Base:        true,
	},
	{
		ID:          "deepseek/deepseek-chat-v3-0324:free",
		Name:        "DeepSeek V3",
		Description: "Conversational MoE model by DeepSeek, optimized for efficiency and multitasking.",
		Base:        true,
	},
	{
		ID:          "meta-llama/llama-3.1-405b-instruct:free",
		Name:        "Llama 3.1 405B",
		Description: "Flagship Meta model with 405B parameters, suitable for complex linguistic tasks.",
		Base:        true,
	},
	{
		ID:          "meta-llama/llama-3.2-3b-instruct:free",
		Name:        "Llama 3.2 3B",
		Description: "Reduced Meta Llama 3.2 model, designed for dialogue and light synthesis.",
		Base:        true,
	},
	{
		ID:          "meta-llama/llama-3.3-8b-instruct:free",
		Name:        "Llama 3.3 8B",
		Description: "Meta Llama 3.3 model with 8B parameters, fast and instruction-tuned.",
		Base:        true,
	},
	{
		ID:          "meta-llama/llama-3.3-70b-instruct:free",
		Name:        "Llama 3.3 70B",
		Description: "Large Meta Llama 3.3 model, optimized for multitasking and extended contexts.",
		Base:        true,
	},
	{
		ID:          "x-ai/grok-4-fast:free",
		Name:        "Grok 4 Fast",
		Description: "Multimodal xAI model, non-reasoning version, optimized for high speed and low costs.",
		Base:        true,
	},
}

// DefaultModel is used whenever no model is selected or an unknown id is given.
const DefaultModel = "openai/gpt-oss-20b:free"

// TitleModel is the lightweight model used for conversation title generation.
const TitleModel = "google/gemma-3-27b-it:free"

// ByID returns the registry entry for id, or nil when the id is unknown.
// Callers are expected to fall back to DefaultModel.
func ByID(id string) *ModelInfo {
	for i := range Available {
		if Available[i].ID == id {
			return &Available[i]
		}
	}
	return nil
}

// PrimaryModels returns the models shown in the main selector.
func PrimaryModels() []ModelInfo {
	var primary []ModelInfo
	for _, m := range Available {
		if m.Primary {
			primary = append(primary, m)
		}
	}
	return primary
}

// SecondaryModels returns the models shown in the expanded selector.
func SecondaryModels() []ModelInfo {
	var secondary []ModelInfo
	for _, m := range Available {
		if !m.Primary {
			secondary = append(secondary, m)
		}
	}
	return secondary
}

// Provider derives the vendor from a model id by splitting on the first "/".
// "openai/gpt-oss-20b:free" → "openai". Ids without a separator are their own
// provider.
func Provider(id string) string {
	if idx := strings.Index(id, "/"); idx != -1 {
		return id[:idx]
	}
	return id
}

// ByProvider groups the registry by vendor.
func ByProvider() map[string][]ModelInfo {
	grouped := make(map[string][]ModelInfo)
	for _, m := range Available {
		p := Provider(m.ID)
		grouped[p] = append(grouped[p], m)
	}
	return grouped
}

// ProviderDisplayName maps a vendor id to its display form.
func ProviderDisplayName(provider string) string {
	switch provider {
	case "openai":
		return "OpenAI"
	case "openrouter":
		return "OpenRouter"
	case "z-ai":
		return "Z-AI"
	case "x-ai":
		return "xAI"
	case "moonshotai":
		return "Moonshot AI"
	case "mistralai":
		return "Mistral AI"
	case "qwen":
		return "Qwen"
	case "deepseek":
		return "DeepSeek"
	case "google":
		return "Google"
	case "meta-llama":
		return "Meta"
	default:
		if provider == "" {
			return provider
		}
		return strings.ToUpper(provider[:1]) + provider[1:]
	}
}
