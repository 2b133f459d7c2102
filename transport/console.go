// Package transport holds the development stand-ins for the chat
// platform and calendar collaborators. The real platform adapters live
// outside this repository; everything here renders to the terminal so
// the workflows can be exercised locally.
package transport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gookit/color"

	"sched-bot/domain"
)

// Console implements the transport contract against stdout. Every
// response gets a fresh message id so live elements can be tracked and
// disabled exactly as they would be on the real platform.
type Console struct {
	log *slog.Logger
}

func NewConsole(log *slog.Logger) *Console {
	return &Console{log: log}
}

func (c *Console) Respond(_ context.Context, in domain.Interaction, res domain.Response) (domain.MessageRef, error) {
	header := color.New(severityColor(res.Severity)).Render(res.Title)
	fmt.Printf("\n[%s] %s\n", header, res.Description)
	if res.URL != "" {
		fmt.Printf("  link: %s\n", res.URL)
	}
	for _, field := range res.Fields {
		fmt.Printf("  %s: %s\n", field.Name, field.Value)
	}
	if res.Button != nil {
		fmt.Printf("  [button %q] id=%s\n", res.Button.Label, res.Button.CustomID)
	}
	if res.Menu != nil {
		fmt.Printf("  [menu] id=%s\n", res.Menu.CustomID)
		for _, option := range res.Menu.Options {
			fmt.Printf("    - %s (%s)\n", option.Label, option.Value)
		}
	}
	if res.Form != nil {
		fmt.Printf("  [form %q] id=%s\n", res.Form.Title, res.Form.CustomID)
		for _, field := range res.Form.Fields {
			fmt.Printf("    - %s: %s\n", field.Key, field.Label)
		}
	}

	return domain.MessageRef{ChannelID: in.ChannelID, MessageID: uuid.NewString()}, nil
}

func (c *Console) DisableComponents(_ context.Context, ref domain.MessageRef, label string) error {
	fmt.Printf("  [disabled %q on message %s]\n", label, ref.MessageID)
	return nil
}

func (c *Console) DeleteResponse(_ context.Context, in domain.Interaction) error {
	c.log.Info("Deleted dangling acknowledgment", "user", in.UserID)
	return nil
}

func (c *Console) CreateRole(_ context.Context, name string) (string, error) {
	roleID := uuid.NewString()
	c.log.Info("Created role", "name", name, "role", roleID)
	return roleID, nil
}

func (c *Console) AssignRole(_ context.Context, userID, roleID string) error {
	c.log.Info("Assigned role", "user", userID, "role", roleID)
	return nil
}

func severityColor(s domain.Severity) color.Color {
	switch s {
	case domain.SeveritySuccess:
		return color.FgGreen
	case domain.SeverityWarning:
		return color.FgYellow
	case domain.SeverityError:
		return color.FgRed
	default:
		return color.FgCyan
	}
}

