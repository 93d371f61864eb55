package domain

import (
	"net/url"
	"strings"
)

const (
	// LinkPrefix is the canonical prefix of a Didact link
	LinkPrefix = "didact://?"
	// VSCodeLinkPrefix is the host-protocol form of a Didact link
	VSCodeLinkPrefix = "vscode://redhat.vscode-didact?"
	// SegmentDelimiter separates the values of text= and user= fields
	SegmentDelimiter = "$$"
)

// Query parameter names used by the link protocol
const (
	ParamCommandID         = "commandId"
	ParamProjectFilePath   = "projectFilePath"
	ParamSourceFilePath    = "srcFilePath"
	ParamExtensionFilePath = "extFilePath"
	ParamCompletion        = "completion"
	ParamError             = "error"
	ParamText              = "text"
	ParamUser              = "user"
	ParamNumber            = "number"
	ParamJSON              = "json"
)

// PathKind identifies which file-addressing scheme a link uses
type PathKind int

const (
	PathNone      PathKind = iota
	PathProject            // relative to the first workspace root
	PathSource             // relative to the invoking extension's install root
	PathExtension          // "<extensionId>/<relative/path>"
)

func (k PathKind) String() string {
	switch k {
	case PathProject:
		return ParamProjectFilePath
	case PathSource:
		return ParamSourceFilePath
	case PathExtension:
		return ParamExtensionFilePath
	default:
		return "none"
	}
}

// LinkInvocation is the parsed form of one Didact link.
// Values are already decoded. Text and User are mutually exclusive, as are
// the path fields (PathKind selects which one Path holds).
type LinkInvocation struct {
	CommandID         string
	CompletionMessage string
	ErrorMessage      string
	PathKind          PathKind
	Path              string
	Text              []string // literal argument segments
	User              []string // prompt labels
	Number            string
	JSON              string
}

// HasPath reports whether one of the path fields was supplied
func (l *LinkInvocation) HasPath() bool {
	return l.PathKind != PathNone
}

// DecodeValue reverses the percent-encoding applied to link values.
// Malformed escape sequences leave the input untouched.
func DecodeValue(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// EncodeValue percent-encodes a value so it survives inside a link query.
// Spaces become %20 rather than '+', which DecodeValue would keep literally.
func EncodeValue(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// SplitSegments splits a raw text=/user= value on the segment delimiter and
// decodes every segment individually.
func SplitSegments(raw string) []string {
	parts := strings.Split(raw, SegmentDelimiter)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		segments = append(segments, DecodeValue(p))
	}
	return segments
}

// IsLink reports whether s starts with one of the accepted link prefixes
func IsLink(s string) bool {
	return strings.HasPrefix(s, LinkPrefix) || strings.HasPrefix(s, VSCodeLinkPrefix)
}

// ParseLink parses a raw Didact link into a LinkInvocation.
//
// Duplicate keys keep their first occurrence. The path fields are taken in
// priority order projectFilePath > srcFilePath > extFilePath and text wins
// over user; the losing fields are ignored.
func ParseLink(rawLink string) (*LinkInvocation, error) {
	rawLink = strings.TrimSpace(rawLink)

	var rawQuery string
	switch {
	case strings.HasPrefix(rawLink, LinkPrefix):
		rawQuery = strings.TrimPrefix(rawLink, LinkPrefix)
	case strings.HasPrefix(rawLink, VSCodeLinkPrefix):
		rawQuery = strings.TrimPrefix(rawLink, VSCodeLinkPrefix)
	default:
		return nil, &ParseError{Link: rawLink, Reason: ErrUnsupportedScheme}
	}

	// Fragments are not part of the protocol
	if i := strings.IndexByte(rawQuery, '#'); i >= 0 {
		rawQuery = rawQuery[:i]
	}

	query := parseQuery(rawQuery)

	commandID, ok := query[ParamCommandID]
	if !ok {
		return nil, &ParseError{Link: rawLink, Reason: ErrMissingCommandID}
	}

	inv := &LinkInvocation{
		CommandID:         DecodeValue(commandID),
		CompletionMessage: DecodeValue(query[ParamCompletion]),
		ErrorMessage:      DecodeValue(query[ParamError]),
		Number:            DecodeValue(query[ParamNumber]),
		JSON:              DecodeValue(query[ParamJSON]),
	}

	switch {
	case query[ParamProjectFilePath] != "":
		inv.PathKind, inv.Path = PathProject, DecodeValue(query[ParamProjectFilePath])
	case query[ParamSourceFilePath] != "":
		inv.PathKind, inv.Path = PathSource, DecodeValue(query[ParamSourceFilePath])
	case query[ParamExtensionFilePath] != "":
		inv.PathKind, inv.Path = PathExtension, DecodeValue(query[ParamExtensionFilePath])
	}

	switch {
	case query[ParamText] != "":
		inv.Text = SplitSegments(query[ParamText])
	case query[ParamUser] != "":
		inv.User = SplitSegments(query[ParamUser])
	}

	return inv, nil
}

// parseQuery splits a raw query into undecoded values, first occurrence wins.
// Keys are decoded; values are left raw so text/user can be split before decoding.
func parseQuery(rawQuery string) map[string]string {
	values := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = DecodeValue(key)
		if _, seen := values[key]; seen {
			continue
		}
		values[key] = value
	}
	return values
}

// String encodes the invocation back into a didact:// link
func (l *LinkInvocation) String() string {
	var b strings.Builder
	b.WriteString(LinkPrefix)
	b.WriteString(ParamCommandID + "=" + EncodeValue(l.CommandID))

	add := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString("&" + key + "=" + value)
	}

	if l.HasPath() {
		add(l.PathKind.String(), EncodeValue(l.Path))
	}
	add(ParamCompletion, EncodeValue(l.CompletionMessage))
	add(ParamError, EncodeValue(l.ErrorMessage))
	switch {
	case len(l.Text) > 0:
		add(ParamText, joinSegments(l.Text))
	case len(l.User) > 0:
		add(ParamUser, joinSegments(l.User))
	}
	add(ParamNumber, EncodeValue(l.Number))
	add(ParamJSON, EncodeValue(l.JSON))

	return b.String()
}

func joinSegments(segments []string) string {
	encoded := make([]string, len(segments))
	for i, s := range segments {
		encoded[i] = EncodeValue(s)
	}
	return strings.Join(encoded, SegmentDelimiter)
}
