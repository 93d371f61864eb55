package domain

import (
	"fmt"
	"strings"
)

// CommandDescriptor documents a command authors commonly link to
type CommandDescriptor struct {
	ID          string
	Description string
	Params      []string // labels of the text= segments the command expects
}

// ParamSnippet returns the text= snippet appended after the command id,
// e.g. "&text=${1:Requirement}$$${2:Command}". Empty when the command takes no params.
func (d CommandDescriptor) ParamSnippet() string {
	if len(d.Params) == 0 {
		return ""
	}
	placeholders := make([]string, len(d.Params))
	for i, p := range d.Params {
		placeholders[i] = fmt.Sprintf("${%d:%s}", i+1, p)
	}
	return "&" + ParamText + "=" + strings.Join(placeholders, SegmentDelimiter)
}

// Command ids of the built-in Didact commands
const (
	CommandStartDidact               = "vscode.didact.startDidact"
	CommandOpenTutorial              = "vscode.didact.openTutorial"
	CommandRegister                  = "vscode.didact.register"
	CommandRequirementCheck          = "vscode.didact.requirementCheck"
	CommandCLICommandSuccessful      = "vscode.didact.cliCommandSuccessful"
	CommandExtensionRequirementCheck = "vscode.didact.extensionRequirementCheck"
	CommandWorkspaceFolderExists     = "vscode.didact.workspaceFolderExistsCheck"
	CommandValidateAllRequirements   = "vscode.didact.validateAllRequirements"
	CommandSendNamedTerminalString   = "vscode.didact.sendNamedTerminalAString"
	CommandOpen                      = "vscode.open"
	CommandEcho                      = "didact.echo"
)

// CommandCatalog is the static catalog used to annotate command completions
var CommandCatalog = []CommandDescriptor{
	{
		ID:          CommandStartDidact,
		Description: "Open a Didact tutorial. Pair with srcFilePath, projectFilePath or extFilePath.",
	},
	{
		ID:          CommandOpenTutorial,
		Description: "Open a registered tutorial by its source URI.",
		Params:      []string{"SourceURI"},
	},
	{
		ID:          CommandRegister,
		Description: "Register a tutorial in the Didact outline.",
		Params:      []string{"Name", "SourceURI", "Category"},
	},
	{
		ID:          CommandRequirementCheck,
		Description: "Run a CLI command and check its output contains the expected text.",
		Params:      []string{"Requirement", "Command", "ExpectedText"},
	},
	{
		ID:          CommandCLICommandSuccessful,
		Description: "Run a CLI command and check that it exits successfully.",
		Params:      []string{"Requirement", "Command"},
	},
	{
		ID:          CommandExtensionRequirementCheck,
		Description: "Check that an extension is installed.",
		Params:      []string{"Requirement", "ExtensionID"},
	},
	{
		ID:          CommandWorkspaceFolderExists,
		Description: "Check that a workspace folder is open.",
		Params:      []string{"Requirement"},
	},
	{
		ID:          CommandValidateAllRequirements,
		Description: "Run every requirement check in the current tutorial.",
	},
	{
		ID:          CommandSendNamedTerminalString,
		Description: "Send text to a named terminal.",
		Params:      []string{"TerminalName", "Text"},
	},
	{
		ID:          CommandOpen,
		Description: "Open a file. Pair with a path field.",
	},
	{
		ID:          CommandEcho,
		Description: "Print the arguments the link produced.",
	},
}

// LookupCommand finds a catalog entry by command id
func LookupCommand(id string) (CommandDescriptor, bool) {
	for _, d := range CommandCatalog {
		if d.ID == id {
			return d, true
		}
	}
	return CommandDescriptor{}, false
}
