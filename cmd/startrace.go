package cmd

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/racetimego/racebot/config"
	"github.com/racetimego/racebot/racetime"
)

// startConcurrency bounds how many rooms are opened in parallel
const startConcurrency = 4

var (
	categories []string
	goal       string
	customGoal bool
	unlisted   bool
	infoBot    string
)

// startraceCmd represents the startrace command
var startraceCmd = &cobra.Command{
	Use:   "startrace",
	Short: "Open race rooms in the configured categories",
	Long: `Open a race room with the configured settings in every configured
category (or the categories given with --category) and print the slug of
each new room.`,
	RunE: runStartRace,
}

func init() {
	rootCmd.AddCommand(startraceCmd)

	startraceCmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "categories to open rooms in (default: configured categories)")
	startraceCmd.Flags().StringVarP(&goal, "goal", "g", "", "override the configured goal")
	startraceCmd.Flags().BoolVar(&customGoal, "custom-goal", false, "submit the goal as a custom goal")
	startraceCmd.Flags().BoolVar(&unlisted, "unlisted", false, "open the rooms unlisted")
	startraceCmd.Flags().StringVar(&infoBot, "info-bot", "", "override the configured bot info text")
}

func runStartRace(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	race := raceFromConfig(cfg.Race)
	if cmd.Flags().Changed("goal") {
		race.Goal = goal
	}
	if cmd.Flags().Changed("custom-goal") {
		race.GoalIsCustom = customGoal
	}
	if cmd.Flags().Changed("unlisted") {
		race.Unlisted = unlisted
	}
	if cmd.Flags().Changed("info-bot") {
		race.InfoBot = infoBot
	}

	targets := cfg.Racetime.Categories
	if len(categories) > 0 {
		targets = categories
	}

	token, err := client.Authorize(ctx, cfg.Racetime.ClientID, cfg.Racetime.ClientSecret)
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}

	logger.Info().
		Strs("categories", targets).
		Str("goal", race.Goal).
		Msg("Opening race rooms")

	// Open rooms concurrently with bounded parallelism; the first
	// failure cancels the remaining starts.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(startConcurrency)

	var mu sync.Mutex
	slugs := make(map[string]string)

	for _, category := range targets {
		category := category
		g.Go(func() error {
			slug, err := client.StartRace(ctx, race, token.AccessToken, category)
			if err != nil {
				return fmt.Errorf("failed to open room in %s: %w", category, err)
			}

			mu.Lock()
			slugs[category] = slug
			mu.Unlock()

			return nil
		})
	}

	err = g.Wait()

	// Report the rooms that did open even when a start failed.
	opened := make([]string, 0, len(slugs))
	for category := range slugs {
		opened = append(opened, category)
	}
	sort.Strings(opened)

	for _, category := range opened {
		fmt.Printf("%s/%s\n", category, slugs[category])
	}

	return err
}

// raceFromConfig maps the configured room defaults onto the request record
func raceFromConfig(rc config.RaceConfig) *racetime.StartRace {
	return &racetime.StartRace{
		Goal:                  rc.Goal,
		GoalIsCustom:          rc.GoalIsCustom,
		TeamRace:              rc.TeamRace,
		Invitational:          rc.Invitational,
		Unlisted:              rc.Unlisted,
		InfoUser:              rc.InfoUser,
		InfoBot:               rc.InfoBot,
		RequireEvenTeams:      rc.RequireEvenTeams,
		StartDelay:            rc.StartDelay,
		TimeLimit:             rc.TimeLimit,
		TimeLimitAutoComplete: rc.TimeLimitAutoComplete,
		StreamingRequired:     rc.StreamingRequired,
		AutoStart:             rc.AutoStart,
		AllowComments:         rc.AllowComments,
		HideComments:          rc.HideComments,
		AllowPreraceChat:      rc.AllowPreraceChat,
		AllowMidraceChat:      rc.AllowMidraceChat,
		AllowNonEntrantChat:   rc.AllowNonEntrantChat,
		ChatMessageDelay:      rc.ChatMessageDelay,
	}
}
