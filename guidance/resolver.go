package guidance

import (
	"strings"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
)

// rule pairs an offence category's trigger keywords with its fixed checklist.
type rule struct {
	keywords []string
	steps    []string
}

// rules are evaluated in order; the first category with a keyword present in
// the section title wins and no further categories are tested. Order matters:
// a title mentioning both theft and hurt is treated as theft.
var rules = []rule{
	{
		keywords: []string{"theft", "stolen", "robbery"},
		steps: []string{
			"Immediately file an FIR at the nearest police station.",
			"Provide details of the stolen property (receipts, photos, IMEI number for phones).",
			"Do not disturb the crime scene if it happened at your property.",
			"Cooperate with the investigation officer.",
		},
	},
	{
		keywords: []string{"hurt", "assault", "beat", "injury"},
		steps: []string{
			"Visit a government hospital for a medical examination (MLC) immediately.",
			"The medical report is crucial evidence for police complaints.",
			"File an FIR or NCR at the local police station.",
			"Take photos of any visible injuries as additional record.",
		},
	},
	{
		keywords: []string{"defamation", "insult", "reputation"},
		steps: []string{
			"Save all proofs (screenshots, recordings, letters) of the defamatory statement.",
			"You may send a legal notice to the person asking them to apologize/withdraw.",
			"You can file a private criminal complaint before a Magistrate.",
			"Civil suits for damages can also be filed separately.",
		},
	},
	{
		keywords: []string{"cheating", "fraud", "dishonest"},
		steps: []string{
			"Gather all documentary proof (bank statements, chats, agreements).",
			"File a written complaint to the Station House Officer (SHO).",
			"If it's a cyber fraud, report it immediately on cybercrime.gov.in.",
			"Do not delete any communication with the fraudster.",
		},
	},
	{
		keywords: []string{"rape", "sexual", "modesty"},
		steps: []string{
			"Go to a safe place immediately.",
			"Do not wash your clothes or body to preserve forensic evidence.",
			"Visit the nearest police station or hospital. Police must register FIR (Zero FIR applies).",
			"You have the right to request a female police officer.",
		},
	},
	{
		keywords: []string{"murder", "death", "homicide"},
		steps: []string{
			"Immediately inform the police (Dial 100/112).",
			"Do not touch anything at the crime scene.",
			"Identify potential witnesses who saw the incident.",
			"Cooperate fully with the investigation.",
		},
	},
}

// fallbackSteps is the generic checklist when no category matches.
var fallbackSteps = []string{
	"Visit the nearest police station to report the incident.",
	"Write down a detailed timeline of what happened while your memory is fresh.",
	"Identify any witnesses who can support your statement.",
	"Consult a qualified lawyer to understand the specific legal implications.",
}

// Resolver maps matched sections to deterministic action checklists.
type Resolver struct{}

// NewResolver creates a guidance resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the ordered instruction list for a matched section.
// It is total: every section resolves to a non-empty checklist.
//
// problemText is accepted for interface symmetry but does not influence the
// result; category resolution depends only on the section's own title.
func (r *Resolver) Resolve(section *core.LegalSection, problemText string) []string {
	title := strings.ToLower(section.Title)

	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(title, keyword) {
				return rule.steps
			}
		}
	}

	return fallbackSteps
}
