package discord

import (
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/clodbot/clodbot-discord/internal/handlers/discord/clodbot"
	"github.com/clodbot/clodbot-discord/internal/services"
)

type Handler struct {
	analyzeHandler *clodbot.AnalyzeHandler
	givesetHandler *clodbot.GivesetHandler
	toggleHandler  *clodbot.ToggleHandler
	closeHandler   *clodbot.CloseHandler
	sheetHandler   *clodbot.SheetHandler
}

type HandlerConfig struct {
	ServiceProvider *services.Provider
}

func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		analyzeHandler: clodbot.NewAnalyzeHandler(&clodbot.AnalyzeHandlerConfig{
			BattleService: cfg.ServiceProvider.BattleService,
		}),
		givesetHandler: clodbot.NewGivesetHandler(&clodbot.GivesetHandlerConfig{
			SetService: cfg.ServiceProvider.SetService,
		}),
		toggleHandler: clodbot.NewToggleHandler(&clodbot.ToggleHandlerConfig{
			SetService: cfg.ServiceProvider.SetService,
		}),
		closeHandler: clodbot.NewCloseHandler(&clodbot.CloseHandlerConfig{
			SetService: cfg.ServiceProvider.SetService,
		}),
		sheetHandler: clodbot.NewSheetHandler(&clodbot.SheetHandlerConfig{
			SheetService:  cfg.ServiceProvider.SheetService,
			BattleService: cfg.ServiceProvider.BattleService,
		}),
	}
}

// RegisterCommands registers the /clodbot command tree. An empty guildID
// registers globally.
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	command := &discordgo.ApplicationCommand{
		Name:        "clodbot",
		Description: "Showdown replay analysis, Smogon sets and stat sheets",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "analyze",
				Description: "Analyze a Showdown replay into kill/death stats",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "url",
						Description: "Replay URL",
						Required:    true,
					},
				},
			},
			{
				Name:        "giveset",
				Description: "Browse Smogon movesets, or roll random ones",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "pokemon",
						Description: "Pokemon name, comma-separated for several, or 'random'",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "generation",
						Description: "Generation, e.g. gen9 or sv (default: latest)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "format",
						Description: "Battle format, e.g. OU (default: first listed)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "count",
						Description: "Number of random sets, random mode only",
					},
				},
			},
			{
				Name:        "sheet",
				Description: "Keep a Google Sheet of per-player battle stats",
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "set",
						Description: "Set the default sheet for this server or channel",
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "url",
								Description: "Google Sheets URL",
								Required:    true,
							},
						},
					},
					{
						Name:        "default",
						Description: "Show the default sheet for this server or channel",
						Type:        discordgo.ApplicationCommandOptionSubCommand,
					},
					{
						Name:        "update",
						Description: "Analyze a replay and merge its stats into the sheet",
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "replay",
								Description: "Replay URL",
								Required:    true,
							},
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "sheet",
								Description: "Google Sheets URL (default: the bound sheet)",
							},
						},
					},
					{
						Name:        "delete",
						Description: "Clear a player's section from the sheet",
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "player",
								Description: "Player name as it appears on the sheet",
								Required:    true,
							},
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "sheet",
								Description: "Google Sheets URL (default: the bound sheet)",
							},
						},
					},
					{
						Name:        "list",
						Description: "List players or Pokemon on the sheet",
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "what",
								Description: "What to list",
								Choices: []*discordgo.ApplicationCommandOptionChoice{
									{Name: "players", Value: "players"},
									{Name: "pokemon", Value: "pokemon"},
								},
							},
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "sheet",
								Description: "Google Sheets URL (default: the bound sheet)",
							},
						},
					},
				},
			},
		},
	}

	_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, command)
	return err
}

// HandleInteraction is the main dispatcher wired to the discordgo session.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if err := h.handleCommand(s, i); err != nil {
			log.Printf("error handling command: %v", err)
		}
	case discordgo.InteractionMessageComponent:
		if err := h.handleComponent(s, i); err != nil {
			log.Printf("error handling component: %v", err)
		}
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != "clodbot" || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "analyze":
		return h.analyzeHandler.Handle(&clodbot.AnalyzeRequest{
			Session:     s,
			Interaction: i,
			ReplayURL:   stringOption(sub.Options, "url"),
		})
	case "giveset":
		return h.givesetHandler.Handle(&clodbot.GivesetRequest{
			Session:     s,
			Interaction: i,
			Pokemon:     stringOption(sub.Options, "pokemon"),
			Generation:  stringOption(sub.Options, "generation"),
			Format:      stringOption(sub.Options, "format"),
			Count:       intOption(sub.Options, "count"),
		})
	case "sheet":
		return h.handleSheetCommand(s, i, sub)
	}
	return nil
}

func (h *Handler) handleSheetCommand(s *discordgo.Session, i *discordgo.InteractionCreate, group *discordgo.ApplicationCommandInteractionDataOption) error {
	if len(group.Options) == 0 {
		return nil
	}

	sub := group.Options[0]
	switch sub.Name {
	case "set":
		return h.sheetHandler.HandleSet(&clodbot.SheetSetRequest{
			Session:     s,
			Interaction: i,
			SheetURL:    stringOption(sub.Options, "url"),
		})
	case "default":
		return h.sheetHandler.HandleDefault(&clodbot.SheetDefaultRequest{
			Session:     s,
			Interaction: i,
		})
	case "update":
		return h.sheetHandler.HandleUpdate(&clodbot.SheetUpdateRequest{
			Session:     s,
			Interaction: i,
			SheetURL:    stringOption(sub.Options, "sheet"),
			ReplayURL:   stringOption(sub.Options, "replay"),
		})
	case "delete":
		return h.sheetHandler.HandleDelete(&clodbot.SheetDeleteRequest{
			Session:     s,
			Interaction: i,
			SheetURL:    stringOption(sub.Options, "sheet"),
			PlayerName:  stringOption(sub.Options, "player"),
		})
	case "list":
		return h.sheetHandler.HandleList(&clodbot.SheetListRequest{
			Session:     s,
			Interaction: i,
			SheetURL:    stringOption(sub.Options, "sheet"),
			What:        stringOption(sub.Options, "what"),
		})
	}
	return nil
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	// Custom IDs follow context:action:args.
	parts := strings.SplitN(customID, ":", 5)
	if len(parts) < 2 {
		log.Printf("unknown component format: %s", customID)
		return nil
	}

	if parts[0] == "giveset" && parts[1] == "close" && len(parts) == 3 {
		return h.closeHandler.Handle(&clodbot.CloseRequest{
			Session:     s,
			Interaction: i,
			SessionID:   parts[2],
		})
	}

	if parts[0] == "giveset" && parts[1] == "toggle" && len(parts) == 5 {
		groupIndex, err := strconv.Atoi(parts[3])
		if err != nil {
			log.Printf("bad group index in component id %q: %v", customID, err)
			return nil
		}
		return h.toggleHandler.Handle(&clodbot.ToggleRequest{
			Session:     s,
			Interaction: i,
			SessionID:   parts[2],
			GroupIndex:  groupIndex,
			SetName:     parts[4],
		})
	}

	return nil
}

func stringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func intOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	for _, opt := range opts {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return 0
}
