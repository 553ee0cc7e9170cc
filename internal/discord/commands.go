package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/metrics"
)

// CommandHandler handles a slash command or component interaction. It
// answers the user itself; the returned error only classifies the outcome.
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error

// errMissingRole marks a command refused for lack of a guild role
var errMissingRole = errors.New("missing required role")

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands   map[string]*discordgo.ApplicationCommand
	Handlers   map[string]CommandHandler
	Components map[string]CommandHandler // keyed by custom id prefix
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:   make(map[string]*discordgo.ApplicationCommand),
		Handlers:   make(map[string]CommandHandler),
		Components: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterComponent routes component interactions whose custom id starts with prefix
func (r *CommandRegistry) RegisterComponent(prefix string, handler CommandHandler) {
	r.Components[prefix] = handler
}

// Handle dispatches an interaction and records its outcome
func (r *CommandRegistry) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var (
		name    string
		handler CommandHandler
		ok      bool
	)
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name = i.ApplicationCommandData().Name
		handler, ok = r.Handlers[name]
	case discordgo.InteractionMessageComponent:
		name, _, _ = strings.Cut(i.MessageComponentData().CustomID, CustomIDSeparator)
		handler, ok = r.Components[name]
	default:
		return
	}

	log := logger.FromContext(ctx)
	if !ok {
		log.Warn(LogMsgUnknownCommand, "name", name, "type", i.Type.String())
		return
	}

	err := handler(ctx, s, i)
	result := classifyResult(err)
	if result == ResultError {
		log.Error(LogMsgCommandFailed, "command", name, "error", err)
	}
	metrics.CommandsHandled.WithLabelValues(name, result).Inc()
}

func classifyResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, errMissingRole),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrChannelRestricted),
		errors.Is(err, domain.ErrInvalidSelection),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrItemNotFound):
		return ResultRejected
	default:
		return ResultError
	}
}

// RegisterCommands intelligently registers/updates commands with Discord
// Only performs updates if commands have changed to avoid rate limits
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands, "guild", b.GuildID)

	// Get currently registered commands from Discord
	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf(ErrMsgFetchCommandsFmt, err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}
	slices.SortFunc(desiredCmds, func(a, b *discordgo.ApplicationCommand) int {
		return strings.Compare(a.Name, b.Name)
	})

	if forceUpdate {
		slog.Info(LogMsgForceUpdate, "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
			return fmt.Errorf(ErrMsgOverwriteCommandFmt, err)
		}
		slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	slog.Info(LogMsgCommandsChanged, "existing", len(existingCmds), "desired", len(desiredCmds))
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf(ErrMsgUpdateCommandsFmt, err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	return slices.EqualFunc(a.Options, b.Options, optionEqual)
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	// Discord returns choice values as JSON numbers or strings; compare textually
	return slices.EqualFunc(a.Choices, b.Choices, func(x, y *discordgo.ApplicationCommandOptionChoice) bool {
		return x.Name == y.Name && fmt.Sprint(x.Value) == fmt.Sprint(y.Value)
	})
}
