package workflow

import "encoding/json"

// OverrideFileName labels the override part of a submission.
const OverrideFileName = "override.typefi_workflow"

// Plugin converting the Markdown input on the server side.
const (
	MarkdownToHTMLAction = "md-to-html"
	MarkdownPlugin       = "typefi-plugin-md"
	PluginUIVersion      = "1"
)

// Override is a workflow fragment forcing the job input to be the submitted document.
type Override struct {
	Actions []Action `json:"actions"`
}

type Action struct {
	Type      string  `json:"type"`
	Inputs    []Input `json:"inputs"`
	Plugin    string  `json:"plugin"`
	UIVersion string  `json:"uiVersion"`
}

type Input struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewMarkdownOverride returns the override converting the named document.
func NewMarkdownOverride(documentName string) *Override {
	return &Override{
		Actions: []Action{
			{
				Type: MarkdownToHTMLAction,
				Inputs: []Input{
					{Name: "input", Value: documentName},
				},
				Plugin:    MarkdownPlugin,
				UIVersion: PluginUIVersion,
			},
		},
	}
}

func (o *Override) Marshal() ([]byte, error) {
	return json.Marshal(o)
}
