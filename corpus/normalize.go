package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
)

// Defaults applied when cleaned source fields are empty.
const (
	defaultIPCTitle       = "Legal Offense"
	defaultIPCPunishment  = "See detailed legal section for punishment"
	defaultCrPCPunishment = "Procedural / Not specified"
	crpcBailability       = "See Description"
	crpcCognizability     = "See Description"
	crpcCourt             = "Not specified"

	sectionPrefix = "section-"
)

// stringify renders a raw JSON value as a string. JSON numbers arrive as
// float64; integral values must not pick up a trailing ".0".
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// cleanField trims a raw value and absorbs the missing-value markers that the
// upstream tabular export leaves behind ("nan", "none").
func cleanField(v any) string {
	s := strings.TrimSpace(stringify(v))
	lower := strings.ToLower(s)
	if lower == "nan" || lower == "none" {
		return ""
	}
	return s
}

// sectionNumber extracts the normalized section identifier,
// stripping the literal "section-" prefix marker.
func sectionNumber(v any) string {
	if v == nil {
		return ""
	}
	return strings.ReplaceAll(stringify(v), sectionPrefix, "")
}

// joinKeywords renders the keywords field, which may be a JSON list or a
// scalar, as a single space-joined string.
func joinKeywords(v any) string {
	if v == nil {
		return ""
	}
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, " ")
	}
	return stringify(v)
}

// normalizeIPC converts one raw penal-code record to a LegalSection.
// Absent fields degrade to empty strings or documented defaults; this never fails.
func normalizeIPC(raw map[string]any) core.LegalSection {
	sec := sectionNumber(raw["section"])

	desc := cleanField(raw["desc"])
	simpleDesc := cleanField(raw["simpleDesc"])
	offence := cleanField(raw["offence"])
	punishment := cleanField(raw["Punishment"])

	if offence == "" {
		offence = defaultIPCTitle
	}
	if punishment == "" {
		punishment = defaultIPCPunishment
	}

	return core.LegalSection{
		Code:                  "IPC " + sec,
		Source:                core.SourceIPC,
		SectionNumber:         sec,
		Title:                 offence,
		Description:           desc,
		SimplifiedDescription: simpleDesc,
		Punishment:            punishment,
		Bailability:           cleanField(raw["bailable"]),
		Cognizability:         cleanField(raw["cognizable"]),
		Court:                 cleanField(raw["court"]),
		SearchText:            desc + " " + simpleDesc + " " + offence,
	}
}

// normalizeCrPC converts one raw procedure-code record to a LegalSection.
// CrPC records carry no offence title; the section number names the entry.
func normalizeCrPC(raw map[string]any) core.LegalSection {
	sec := sectionNumber(raw["section"])

	desc := cleanField(raw["desc"])
	simpleDesc := cleanField(raw["simpleDesc"])
	keywords := joinKeywords(raw["keywords"])

	punishment := cleanField(raw["punishment"])
	if punishment == "" {
		punishment = defaultCrPCPunishment
	}

	return core.LegalSection{
		Code:                  "CrPC " + sec,
		Source:                core.SourceCrPC,
		SectionNumber:         sec,
		Title:                 "Section " + sec,
		Description:           desc,
		SimplifiedDescription: simpleDesc,
		Punishment:            punishment,
		Bailability:           crpcBailability,
		Cognizability:         crpcCognizability,
		Court:                 crpcCourt,
		SearchText:            desc + " " + simpleDesc + " " + keywords,
	}
}
