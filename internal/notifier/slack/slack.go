package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sidelinestats/scorebook/internal/metrics"
	"github.com/sidelinestats/scorebook/internal/notifier"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = (*Notifier)(nil)

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendGameStarted announces a freshly created game and its roster size.
func (s *Notifier) SendGameStarted(game statlog.Game, playerCount int, dryRun bool) error {
	msg := s.formatGameStarted(game, playerCount)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendTotalsSummary announces saved totals with a short leaders digest.
func (s *Notifier) SendTotalsSummary(game statlog.Game, table totals.Table, eventCount int, dryRun bool) error {
	msg := s.formatTotalsSummary(game, table, eventCount)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) formatGameStarted(game statlog.Game, playerCount int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📋 New game on the clipboard!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s\n%s vs %s", game.Sport, game.Date, game.Opponent)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	contextText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("%d players on the roster", playerCount), true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatTotalsSummary(game statlog.Game, table totals.Table, eventCount int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "💾 Game saved!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s\n%d events logged, totals for %d players", game.Label(), eventCount, len(table.Rows))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	// Leaders digest: the first few stat columns of the first few rows.
	if len(table.Rows) > 0 {
		var lines []string
		for i, row := range table.Rows {
			if i >= 5 {
				break
			}
			var cells []string
			for _, col := range statColumns(table.Columns, 3) {
				cells = append(cells, fmt.Sprintf("%s %s", col, totals.CellString(row[col])))
			}
			lines = append(lines, fmt.Sprintf("• %s: %s", totals.CellString(row["player_key"]), strings.Join(cells, ", ")))
		}
		digest := strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", digest, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// statColumns returns the first n non-identity columns.
func statColumns(columns []string, n int) []string {
	identity := make(map[string]bool, len(totals.IdentityColumns))
	for _, c := range totals.IdentityColumns {
		identity[c] = true
	}
	var out []string
	for _, c := range columns {
		if identity[c] {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out
}
