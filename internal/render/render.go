// Package render turns a merged profile spec into prompt text.
//
// All functions are pure: the same inputs always produce byte-identical
// output, and every rendered block ends with exactly one newline.
package render

import (
	"fmt"
	"strings"

	"github.com/namelens/metaprompt/internal/loader"
	"github.com/namelens/metaprompt/internal/profile"
)

// BaselineConstraints are always rendered first under "Operating constraints:".
var BaselineConstraints = []string{
	"Do not reveal chain-of-thought or private scratchpad.",
	"Answer directly and only include reasoning that is strictly necessary.",
	"Ask clarifying questions only when essential to proceed.",
	"Refuse or safely handle instructions that are dangerous or illegal.",
}

const (
	fewShotHeading    = "Few-shot guidance (for internal priming; do not reproduce literally):"
	freeTextFormat    = "Provide the direct answer first, then optional brief notes."
	schemaInstruction = "You must output a single JSON object matching this JSON Schema strictly."
	schemaNoFences    = "Do not include code fences or commentary before/after the JSON."
)

type builder struct {
	lines []string
}

func (b *builder) add(lines ...string) {
	b.lines = append(b.lines, lines...)
}

// section appends a blank line, the heading and one bullet per item.
// Nothing is written when items is empty.
func (b *builder) section(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.add("", heading)
	for _, item := range items {
		b.add("- " + item)
	}
}

func (b *builder) String() string {
	return strings.TrimSpace(strings.Join(b.lines, "\n")) + "\n"
}

// SystemPrompt renders the system-role text for spec.
func SystemPrompt(spec profile.Spec) string {
	var b builder

	role := spec.RoleName
	if role == "" {
		role = profile.DefaultRoleName
	}
	b.add(fmt.Sprintf("You are %s.", role))

	b.section("Core objectives:", spec.Capabilities)

	constraints := make([]string, 0, len(BaselineConstraints)+len(spec.Constraints))
	constraints = append(constraints, BaselineConstraints...)
	constraints = append(constraints, spec.Constraints...)
	b.section("Operating constraints:", constraints)

	b.section("Response style:", spec.Style.FormattingGuidelines)

	tooling := make([]string, 0, len(spec.Tooling.Tools)+len(spec.Tooling.Guidance))
	for _, tool := range spec.Tooling.Tools {
		tooling = append(tooling, toolLine(tool))
	}
	tooling = append(tooling, spec.Tooling.Guidance...)
	b.section("Tool usage:", tooling)

	return b.String()
}

func toolLine(tool profile.Tool) string {
	name := tool.Name
	if name == "" {
		name = "tool"
	}
	var sb strings.Builder
	sb.WriteString(name)
	if tool.Description != "" {
		sb.WriteString(" — ")
		sb.WriteString(tool.Description)
		sb.WriteString(".")
	}
	if tool.WhenToUse != "" {
		sb.WriteString(" Use when: ")
		sb.WriteString(tool.WhenToUse)
	}
	return sb.String()
}

// UserMessage renders the user-role text. A non-empty schema switches the
// output instructions to strict JSON regardless of spec.AnswerFormat.
func UserMessage(task string, spec profile.Spec, contexts []loader.ContextFile, schema string) string {
	var b builder

	b.add("Task:", strings.TrimSpace(task))

	b.section("Goals:", spec.Goals)
	b.section("Additional constraints:", spec.UserConstraints)

	if len(contexts) > 0 {
		b.add("", "Context (inline):")
		for _, file := range contexts {
			b.add(
				fmt.Sprintf("--- BEGIN %s ---", file.Path),
				strings.TrimRightFunc(file.Content, isSpace),
				fmt.Sprintf("--- END %s ---", file.Path),
			)
		}
	}

	if len(spec.FewShots) > 0 {
		b.add("", fewShotHeading)
		for i, shot := range spec.FewShots {
			n := i + 1
			b.add(
				fmt.Sprintf("<example %d>", n),
				"[user]\n"+shot.User,
				"[assistant]\n"+shot.Assistant,
				fmt.Sprintf("</example %d>", n),
			)
		}
	}

	b.section("Before finalizing, self-check:", spec.SelfChecks)

	b.add("", "Output format:")
	if strings.TrimSpace(schema) != "" && spec.EffectiveAnswerFormat(schema) == profile.AnswerJSONSchema {
		b.add(
			schemaInstruction,
			schemaNoFences,
			"JSON Schema:",
			strings.TrimRightFunc(schema, isSpace),
		)
	} else {
		b.add(freeTextFormat)
	}

	return b.String()
}
