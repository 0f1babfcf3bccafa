package guidance

import (
	"testing"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Categories(t *testing.T) {
	resolver := NewResolver()

	tests := []struct {
		name      string
		title     string
		firstStep string
	}{
		{
			name:      "theft",
			title:     "Theft",
			firstStep: "Immediately file an FIR at the nearest police station.",
		},
		{
			name:      "robbery maps to theft category",
			title:     "Punishment for robbery",
			firstStep: "Immediately file an FIR at the nearest police station.",
		},
		{
			name:      "hurt",
			title:     "Voluntarily causing hurt",
			firstStep: "Visit a government hospital for a medical examination (MLC) immediately.",
		},
		{
			name:      "defamation",
			title:     "Defamation",
			firstStep: "Save all proofs (screenshots, recordings, letters) of the defamatory statement.",
		},
		{
			name:      "cheating",
			title:     "Cheating and dishonestly inducing delivery of property",
			firstStep: "Gather all documentary proof (bank statements, chats, agreements).",
		},
		{
			name:      "modesty with assault keyword resolves as hurt",
			title:     "Assault or criminal force to woman with intent to outrage her modesty",
			firstStep: "Visit a government hospital for a medical examination (MLC) immediately.",
		},
		{
			name:      "rape",
			title:     "Punishment for rape",
			firstStep: "Go to a safe place immediately.",
		},
		{
			name:      "modesty without assault keyword",
			title:     "Word, gesture or act intended to insult the modesty of a woman",
			firstStep: "Save all proofs (screenshots, recordings, letters) of the defamatory statement.",
		},
		{
			name:      "murder",
			title:     "Murder",
			firstStep: "Immediately inform the police (Dial 100/112).",
		},
		{
			name:      "case insensitive",
			title:     "THEFT OF PROPERTY",
			firstStep: "Immediately file an FIR at the nearest police station.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := &core.LegalSection{Code: "IPC 1", Title: tt.title}
			steps := resolver.Resolve(section, "")

			require.NotEmpty(t, steps)
			assert.Equal(t, tt.firstStep, steps[0])
			assert.GreaterOrEqual(t, len(steps), 4)
			assert.LessOrEqual(t, len(steps), 5)
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	resolver := NewResolver()

	// Title carries both theft and hurt triggers; theft is the earlier
	// category and must win.
	section := &core.LegalSection{
		Code:  "IPC 394",
		Title: "Voluntarily causing hurt in committing theft",
	}

	steps := resolver.Resolve(section, "")
	assert.Equal(t, "Immediately file an FIR at the nearest police station.", steps[0])
}

func TestResolve_Fallback(t *testing.T) {
	resolver := NewResolver()

	section := &core.LegalSection{
		Code:        "CrPC 154",
		Title:       "Section 154",
		Description: "Information in cognizable cases.",
	}

	steps := resolver.Resolve(section, "")
	assert.Equal(t, fallbackSteps, steps)
	assert.Len(t, steps, 4)
}

func TestResolve_IgnoresProblemText(t *testing.T) {
	resolver := NewResolver()
	section := &core.LegalSection{Code: "CrPC 154", Title: "Section 154"}

	// The caller's phrasing must not influence the category decision
	withTheftPhrasing := resolver.Resolve(section, "someone stole my phone")
	withoutPhrasing := resolver.Resolve(section, "")

	assert.Equal(t, withoutPhrasing, withTheftPhrasing)
	assert.Equal(t, fallbackSteps, withTheftPhrasing)
}
