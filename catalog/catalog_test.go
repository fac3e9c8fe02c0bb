package catalog

import "testing"

func TestByID(t *testing.T) {
	info := ByID(DefaultModel)
	if info == nil {
		t.Fatal("default model must be in the registry")
	}
	if info.ID != DefaultModel {
		t.Errorf("expected %q, got %q", DefaultModel, info.ID)
	}

	if ByID("vendor/not-a-model") != nil {
		t.Error("unknown id must return nil")
	}
	if ByID("") != nil {
		t.Error("empty id must return nil")
	}
}

func TestTitleModelRegistered(t *testing.T) {
	if ByID(TitleModel) == nil {
		t.Error("title model must be in the registry")
	}
}

func TestRegistryIsWellFormed(t *testing.T) {
	seen := make(map[string]bool, len(Available))
	for _, m := range Available {
		if m.ID == "" || m.Name == "" {
			t.Errorf("model with missing id or name: %+v", m)
		}
		if seen[m.ID] {
			t.Errorf("duplicate model id %q", m.ID)
		}
		seen[m.ID] = true
		if m.ImageGenerator && !m.Multimodal {
			t.Errorf("image generator %q must also be multimodal", m.ID)
		}
	}
}

func TestRegistryIncludesLongTailModels(t *testing.T) {
	ids := []string{
		"google/gemma-3n-e2b-it:free",
		"google/gemma-3n-e4b-it:free",
		"moonshotai/kimi-vl-a3b-thinking:free",
		"mistralai/mistral-nemo:free",
		"meta-llama/llama-4-maverick:free",
		"meta-llama/llama-3.1-405b-instruct:free",
		"meta-llama/llama-3.2-3b-instruct:free",
		"meta-llama/llama-3.3-8b-instruct:free",
	}
	for _, id := range ids {
		if ByID(id) == nil {
			t.Errorf("model %q missing from the registry", id)
		}
	}
}

func TestPrimarySecondaryPartition(t *testing.T) {
	primary := PrimaryModels()
	secondary := SecondaryModels()

	if len(primary) == 0 {
		t.Error("expected at least one primary model")
	}
	if len(primary)+len(secondary) != len(Available) {
		t.Errorf("partition mismatch: %d + %d != %d", len(primary), len(secondary), len(Available))
	}
	for _, m := range primary {
		if !m.Primary {
			t.Errorf("non-primary model %q in primary list", m.ID)
		}
	}
}

func TestProvider(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"openai/gpt-oss-20b:free", "openai"},
		{"meta-llama/llama-4-scout:free", "meta-llama"},
		{"standalone", "standalone"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Provider(tt.id); got != tt.expected {
			t.Errorf("Provider(%q) = %q, want %q", tt.id, got, tt.expected)
		}
	}
}

func TestByProviderCoversRegistry(t *testing.T) {
	grouped := ByProvider()

	total := 0
	for _, models := range grouped {
		total += len(models)
	}
	if total != len(Available) {
		t.Errorf("grouping lost models: %d != %d", total, len(Available))
	}
	if len(grouped["google"]) == 0 {
		t.Error("expected google models in the registry")
	}
}

func TestProviderDisplayName(t *testing.T) {
	tests := []struct {
		provider string
		expected string
	}{
		{"openai", "OpenAI"},
		{"meta-llama", "Meta"},
		{"x-ai", "xAI"},
		{"somevendor", "Somevendor"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ProviderDisplayName(tt.provider); got != tt.expected {
			t.Errorf("ProviderDisplayName(%q) = %q, want %q", tt.provider, got, tt.expected)
		}
	}
}
