package domain

// AuthoringSnippet is an insertable fragment offered outside of links
type AuthoringSnippet struct {
	Label         string
	Template      string
	Documentation string
}

// MarkdownSnippets are offered in Markdown tutorials
var MarkdownSnippets = []AuthoringSnippet{
	{
		Label:         "Insert Didact requirements label",
		Template:      "[Status: unknown]{#${1:requirement-name}}",
		Documentation: "Status label updated by a requirement check with the same id.",
	},
	{
		Label:         "Insert Didact install extension link",
		Template:      "[${1:Install the extension}](didact://?commandId=workbench.extensions.installExtension&text=${2:publisher.extension})",
		Documentation: "Link that installs an extension from the marketplace.",
	},
	{
		Label:         "Insert Didact validate all button",
		Template:      "[Validate all requirements](didact://?commandId=" + CommandValidateAllRequirements + ")",
		Documentation: "Runs every requirement check in the tutorial.",
	},
	{
		Label:         "Insert Didact start tutorial link",
		Template:      "[${1:Open the tutorial}](didact://?commandId=" + CommandStartDidact + "&srcFilePath=${2:path/to/tutorial.didact.md})",
		Documentation: "Link that opens another tutorial bundled with the extension.",
	},
}

// AsciiDocSnippets are offered in AsciiDoc tutorials. AsciiDoc attaches ids
// and roles to inline text natively, so it gets the role-based status
// labels Markdown cannot express without raw HTML.
var AsciiDocSnippets = []AuthoringSnippet{
	{
		Label:         "Insert Didact requirements label",
		Template:      "[[${1:requirement-name}]]_Status: unknown_",
		Documentation: "Status label updated by a requirement check with the same id.",
	},
	{
		Label:         "Insert Didact install extension link",
		Template:      "link:didact://?commandId=workbench.extensions.installExtension&text=${1:publisher.extension}[${2:Install the extension}]",
		Documentation: "Link that installs an extension from the marketplace.",
	},
	{
		Label:         "Insert Didact validate all button",
		Template:      "link:didact://?commandId=" + CommandValidateAllRequirements + "[Validate all requirements]",
		Documentation: "Runs every requirement check in the tutorial.",
	},
	{
		Label:         "Insert Didact start tutorial link",
		Template:      "link:didact://?commandId=" + CommandStartDidact + "&srcFilePath=${1:path/to/tutorial.didact.adoc}[${2:Open the tutorial}]",
		Documentation: "Link that opens another tutorial bundled with the extension.",
	},
	{
		Label:         "Insert Didact available status label",
		Template:      "[.didact-status-ok]#${1:Available}#",
		Documentation: "Inline status text styled with the available role.",
	},
	{
		Label:         "Insert Didact unavailable status label",
		Template:      "[.didact-status-missing]#${1:Unavailable}#",
		Documentation: "Inline status text styled with the unavailable role.",
	},
}
