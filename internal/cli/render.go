package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/response"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5B47E0")).
			Padding(0, 2)

	statusStyles = map[cfn.StatusType]lipgloss.Style{
		cfn.StatusSuccess: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#98C379")).
			Padding(0, 1),
		cfn.StatusFailed: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E06C75")).
			Padding(0, 1),
	}

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#61AFEF")).
			Bold(true).
			Width(20)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ABB2BF"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5C07B")).
			MarginLeft(2)
)

func renderField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

// renderOutcome prints what was reported. reported is the business failure
// error for a delivered FAILED response, nil otherwise.
func renderOutcome(w io.Writer, req *sendRequest, reported error) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Response sent"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Status"))
	b.WriteString(statusStyles[req.status].Render(string(req.status)))
	b.WriteString("\n")
	if reported != nil {
		renderField(&b, "Reason", reported.Error())
	}
	renderField(&b, "Stack", req.event.StackID)
	renderField(&b, "Request", req.event.RequestID)
	renderField(&b, "Logical resource", req.event.LogicalResourceID)

	fmt.Fprint(w, b.String())
}

func renderDryRun(w io.Writer, target *response.Target, body []byte) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dry run"))
	b.WriteString("\n\n")
	renderField(&b, "Method", "PUT")
	renderField(&b, "Host", target.Host)
	renderField(&b, "Path", target.Path)
	b.WriteString("\n")
	b.WriteString(codeStyle.Render(string(body)))
	b.WriteString("\n")

	fmt.Fprint(w, b.String())
}
