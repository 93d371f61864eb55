package host

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"didact/internal/adapters/launcher"
	"didact/internal/application"
	"didact/internal/domain"
	"didact/internal/ports"
)

// URIOpener hands external URIs to the desktop
type URIOpener interface {
	OpenURI(ctx context.Context, uri string) error
}

// LinkScanner extracts anchors from rendered HTML
type LinkScanner interface {
	FindLinks(doc string, match func(href string) bool) []string
}

// requirementCommands are the checks validateAllRequirements runs
var requirementCommands = map[string]bool{
	domain.CommandRequirementCheck:          true,
	domain.CommandCLICommandSuccessful:      true,
	domain.CommandExtensionRequirementCheck: true,
	domain.CommandWorkspaceFolderExists:     true,
}

// Builtins implements the commands tutorials link to
type Builtins struct {
	Registry  *application.TutorialRegistry
	Workspace ports.Workspace
	Notifier  ports.Notifier
	Fetcher   ports.DocumentFetcher
	Renderer  ports.DocumentRenderer
	Links     LinkScanner
	Opener    ports.FileOpener // nil leaves files unopened
	Launcher  URIOpener        // nil rejects external URIs
	Shell     string
	Out       io.Writer
	Logger    *zap.Logger

	mu      sync.Mutex
	current string // last tutorial opened
}

// Install registers every built-in command on c
func (b *Builtins) Install(c *Commands) error {
	if b.Logger == nil {
		b.Logger = zap.NewNop()
	}
	if b.Out == nil {
		b.Out = io.Discard
	}
	if b.Shell == "" {
		b.Shell = "sh"
	}

	handlers := []struct {
		id string
		h  Handler
	}{
		{domain.CommandStartDidact, b.openTutorial},
		{domain.CommandOpenTutorial, b.openTutorial},
		{domain.CommandRegister, b.register},
		{domain.CommandRequirementCheck, b.requirementCheck},
		{domain.CommandCLICommandSuccessful, b.cliCommandSuccessful},
		{domain.CommandExtensionRequirementCheck, b.extensionRequirementCheck},
		{domain.CommandWorkspaceFolderExists, b.workspaceFolderExists},
		{domain.CommandValidateAllRequirements, func(ctx context.Context, args ...any) (any, error) {
			return b.validateAll(ctx, c, args...)
		}},
		{domain.CommandSendNamedTerminalString, b.sendNamedTerminalString},
		{domain.CommandOpen, b.open},
		{domain.CommandEcho, b.echo},
	}
	for _, h := range handlers {
		if err := c.Register(h.id, h.h); err != nil {
			return err
		}
	}
	return nil
}

// CurrentTutorial returns the last tutorial opened through a link
func (b *Builtins) CurrentTutorial() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *Builtins) openTutorial(ctx context.Context, args ...any) (any, error) {
	uri, err := stringArg(args, 0, "tutorial")
	if err != nil {
		return nil, err
	}
	if b.Fetcher != nil {
		if _, err := b.Fetcher.Fetch(ctx, uri); err != nil {
			return nil, err
		}
	}
	b.mu.Lock()
	b.current = uri
	b.mu.Unlock()

	if b.Opener != nil && !strings.Contains(uri, "://") {
		if err := b.Opener.OpenFile(ctx, uri); err != nil {
			return nil, err
		}
	}
	return uri, nil
}

func (b *Builtins) register(ctx context.Context, args ...any) (any, error) {
	values, err := stringArgs(args, "name", "sourceUri", "category")
	if err != nil {
		return nil, err
	}
	if b.Registry == nil {
		return nil, fmt.Errorf("no tutorial registry")
	}
	return nil, b.Registry.Register(ctx, values[0], values[1], values[2])
}

func (b *Builtins) requirementCheck(ctx context.Context, args ...any) (any, error) {
	values, err := stringArgs(args, "requirement", "command", "expectedText")
	if err != nil {
		return nil, err
	}
	out, err := b.run(ctx, values[1])
	ok := err == nil && strings.Contains(out, values[2])
	b.status(values[0], ok)
	return ok, nil
}

func (b *Builtins) cliCommandSuccessful(ctx context.Context, args ...any) (any, error) {
	values, err := stringArgs(args, "requirement", "command")
	if err != nil {
		return nil, err
	}
	_, err = b.run(ctx, values[1])
	b.status(values[0], err == nil)
	return err == nil, nil
}

func (b *Builtins) extensionRequirementCheck(ctx context.Context, args ...any) (any, error) {
	values, err := stringArgs(args, "requirement", "extensionId")
	if err != nil {
		return nil, err
	}
	ok := false
	if b.Workspace != nil {
		_, ok = b.Workspace.ExtensionRoot(values[1])
	}
	b.status(values[0], ok)
	return ok, nil
}

func (b *Builtins) workspaceFolderExists(ctx context.Context, args ...any) (any, error) {
	requirement, err := stringArg(args, 0, "requirement")
	if err != nil {
		return nil, err
	}
	ok := false
	if b.Workspace != nil {
		_, ok = b.Workspace.WorkspaceRoot()
	}
	b.status(requirement, ok)
	return ok, nil
}

// validateAll runs every requirement link found in the tutorial given as
// the first argument, or in the last opened tutorial
func (b *Builtins) validateAll(ctx context.Context, c *Commands, args ...any) (any, error) {
	uri := b.CurrentTutorial()
	if len(args) > 0 {
		if v, err := stringArg(args, 0, "tutorial"); err == nil && v != "" {
			uri = v
		}
	}
	if uri == "" {
		return nil, fmt.Errorf("no tutorial open")
	}
	if b.Fetcher == nil || b.Renderer == nil || b.Links == nil {
		return nil, fmt.Errorf("document pipeline not configured")
	}

	doc, err := b.Fetcher.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}
	html, err := b.Renderer.Render(ctx, doc)
	if err != nil {
		return nil, err
	}

	total, passed := 0, 0
	for _, link := range b.Links.FindLinks(html, domain.IsLink) {
		inv, err := domain.ParseLink(link)
		if err != nil || !requirementCommands[inv.CommandID] {
			continue
		}
		checkArgs := make([]any, len(inv.Text))
		for i, t := range inv.Text {
			checkArgs[i] = t
		}
		total++
		result, err := c.Invoke(ctx, inv.CommandID, checkArgs...)
		if err != nil {
			b.Logger.Warn("requirement check failed",
				zap.String("command", inv.CommandID),
				zap.Error(err))
			continue
		}
		if ok, _ := result.(bool); ok {
			passed++
		}
	}

	if b.Notifier != nil {
		b.Notifier.Info(fmt.Sprintf("%d of %d requirements available", passed, total))
	}
	return passed == total, nil
}

func (b *Builtins) sendNamedTerminalString(ctx context.Context, args ...any) (any, error) {
	values, err := stringArgs(args, "terminal", "text")
	if err != nil {
		return nil, err
	}
	out, err := b.run(ctx, values[1])

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fmt.Fprintf(b.Out, "[%s] %s\n", values[0], scanner.Text())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		b.Logger.Warn("terminal command exited with an error",
			zap.String("terminal", values[0]),
			zap.Int("code", exitErr.ExitCode()))
		return nil, nil
	}
	return nil, err
}

func (b *Builtins) open(ctx context.Context, args ...any) (any, error) {
	target, err := stringArg(args, 0, "path")
	if err != nil {
		return nil, err
	}
	if launcher.IsExternal(target) {
		if b.Launcher == nil {
			return nil, fmt.Errorf("cannot open %s: no launcher", target)
		}
		return nil, b.Launcher.OpenURI(ctx, target)
	}
	if b.Opener == nil {
		return nil, fmt.Errorf("cannot open %s: no editor configured", target)
	}
	return nil, b.Opener.OpenFile(ctx, target)
}

func (b *Builtins) echo(ctx context.Context, args ...any) (any, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	line := strings.Join(parts, " ")
	fmt.Fprintln(b.Out, line)
	return line, nil
}

// run executes command through the shell and returns its combined output
func (b *Builtins) run(ctx context.Context, command string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, b.Shell, "-c", command)
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

func (b *Builtins) status(requirement string, available bool) {
	if sr, ok := b.Notifier.(ports.StatusReporter); ok {
		sr.Status(requirement, available)
	}
}
