package report

import (
	"bytes"
	"fmt"
	"strings"

	"designlens/internal/figma"
	"designlens/internal/util/jsonutil"
)

// SystemInstruction is sent as the model's system instruction.
const SystemInstruction = "You are a seasoned UI/UX designer and accessibility specialist."

// Thresholds the prompt asks the model to check against.
const (
	MinFontSizePx    = 14
	MinTouchTargetPx = 44
)

const (
	designJSONIndent  = "  "
	designJSONHeading = "DESIGN DATA (JSON)"
)

const intro = "The following is Figma design data in JSON form. Analyse it and write an improvement " +
	"report in Markdown from the viewpoint of UI/UX and accessibility."

var axes = []struct {
	title string
	items []string
}{
	{
		title: "1. Accessibility",
		items: []string{
			"Contrast ratio: point out places where the contrast between text colour and background fills looks too low to read comfortably.",
			fmt.Sprintf("Font size: warn about any TEXT node whose fontSize is below %dpx.", MinFontSizePx),
			fmt.Sprintf("Touch targets: warn about interactive elements (buttons, links, etc.) whose absoluteBoundingBox width or height is below %dpx (minimum %dx%d).", MinTouchTargetPx, MinTouchTargetPx, MinTouchTargetPx),
		},
	},
	{
		title: "2. Consistency",
		items: []string{
			"Spacing: check whether the gaps between sibling elements, inferred from their absoluteBoundingBox values, are irregular.",
			"Typography: check for inconsistent fontFamily or fontWeight across TEXT nodes.",
		},
	},
	{
		title: "3. Improvement suggestions",
		items: []string{
			"For every problem above, give a concrete fix and name the node it applies to by id and name.",
			fmt.Sprintf("Examples: \"raise the button height to at least %dpx\", \"set the body font size to 16px\".", MinTouchTargetPx),
		},
	},
}

const outputFormat = "Write Markdown, structured with headings and bullet lists so it is easy to read."

// Build renders the analysis prompt for root. Identical trees give
// byte-identical prompts.
//
// The only possible error is an encoder failure on a hand-built tree whose
// fills is not valid JSON; trees produced by figma.Reduce from decoded
// responses always encode.
func Build(root figma.ReducedNode) (string, error) {
	data, err := jsonutil.MarshalNoEscapeIndent(root, designJSONIndent)
	if err != nil {
		return "", fmt.Errorf("report: encode design data: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(intro)
	buf.WriteString("\n\n")
	writeSection(&buf, "ANALYSIS AXES", formatAxes())
	writeSection(&buf, "OUTPUT FORMAT", outputFormat)
	writeSection(&buf, designJSONHeading, "```json\n"+string(data)+"\n```")
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func writeSection(buf *bytes.Buffer, title, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	buf.WriteString("# ")
	buf.WriteString(title)
	buf.WriteString("\n")
	buf.WriteString(body)
	buf.WriteString("\n\n")
}

func formatAxes() string {
	var b strings.Builder
	for i, a := range axes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("## ")
		b.WriteString(a.title)
		b.WriteString("\n")
		for _, it := range a.items {
			b.WriteString("- ")
			b.WriteString(it)
			b.WriteString("\n")
		}
	}
	return b.String()
}
