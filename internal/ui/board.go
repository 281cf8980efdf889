package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/longsdenyell/sleeper-gameday/internal/espn"
	"github.com/longsdenyell/sleeper-gameday/internal/layout"
	"github.com/longsdenyell/sleeper-gameday/internal/state"
)

// renderMain renders the full dashboard: header, command bar, featured tiles,
// then the rest of the board in layout order.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	arrangement := m.opts.Layout.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar(styles))
	b.WriteString("\n")

	featured := map[string]bool{}
	for slot, id := range arrangement.Featured {
		if id == "" {
			continue
		}
		featured[id] = true
		b.WriteString(m.renderTile(id, arrangement, styles, slot+1))
		b.WriteString("\n")
	}

	for _, id := range arrangement.Order {
		if featured[id] {
			continue
		}
		b.WriteString(m.renderTile(id, arrangement, styles, 0))
		b.WriteString("\n")
	}

	if len(arrangement.Order) == 0 {
		b.WriteString(styles.MutedText.Render("No leagues to show."))
		b.WriteString("\n")
	}

	return b.String()
}

func selectedLeague(arrangement layout.State, idx int) string {
	if len(arrangement.Order) == 0 {
		return ""
	}
	return arrangement.Order[clampIndex(idx, len(arrangement.Order))]
}

// renderHeader renders the top status bar.
func (m Model) renderHeader(styles Styles) string {
	parts := []string{
		styles.Logo.Render("gameday"),
		styles.AccentText.Render(fmt.Sprintf("%s wk %d", m.opts.Season, m.opts.Week)),
	}
	if m.opts.Username != "" {
		parts = append(parts, styles.Text.Render(m.opts.Username))
	}
	if !m.live {
		parts = append(parts, styles.WarningText.Render("PAUSED"))
	}
	if live := m.liveGameCount(); live > 0 {
		parts = append(parts, styles.SuccessText.Render(fmt.Sprintf("● %d live", live)))
	}
	if stale := m.staleLeagueCount(); stale > 0 {
		parts = append(parts, styles.DangerText.Render(fmt.Sprintf("%d stale", stale)))
	}
	return styles.Header.Width(max(m.width, 0)).Render(strings.Join(parts, "  "))
}

func (m Model) renderCommandBar(styles Styles) string {
	hints := "j/k select · J/K move · 1/2 feature · 0 unfeature · enter collapse · r refresh · p pause · h help · q quit"
	return styles.Footer.Width(max(m.width, 0)).Render(hints)
}

func (m Model) liveGameCount() int {
	seen := map[string]bool{}
	n := 0
	for _, game := range m.opts.Games.Games {
		if game.Status == espn.StatusIn && !seen[game.ID] {
			seen[game.ID] = true
			n++
		}
	}
	return n
}

func (m Model) staleLeagueCount() int {
	n := 0
	for _, id := range m.opts.Layout.Snapshot().Order {
		if m.opts.Store.Status(id).Stale() {
			n++
		}
	}
	return n
}

// renderTile renders one league. slot is 1 or 2 for featured tiles, 0
// otherwise.
func (m Model) renderTile(id string, arrangement layout.State, styles Styles, slot int) string {
	snap, have := m.opts.Store.Current(id)
	status := m.opts.Store.Status(id)
	selected := id == selectedLeague(arrangement, m.selected)
	collapsed := arrangement.Collapsed[id]

	frame := styles.Tile
	if m.opts.Flashes.TileFlash(id) {
		frame = styles.TileFlashing
	} else if selected {
		frame = styles.TileSelected
	}

	var b strings.Builder
	b.WriteString(m.renderTileTitle(id, snap, have, status, styles, slot))

	if have && !collapsed {
		b.WriteString("\n")
		b.WriteString(m.renderMatchup(snap, styles, slot > 0))
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return frame.Width(width).Render(b.String())
}

func (m Model) renderTileTitle(id string, snap state.MatchupSnapshot, have bool, status state.LeagueStatus, styles Styles, slot int) string {
	name := id
	if have && snap.LeagueName != "" {
		name = snap.LeagueName
	}

	parts := []string{styles.AccentText.Render(name)}
	if slot > 0 {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("★%d", slot)))
	}
	if have && snap.TotalTeams > 0 {
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("%d teams", snap.TotalTeams)))
	}
	if status.Stale() {
		parts = append(parts, styles.DangerText.Render("STALE"))
	}

	if have {
		score := fmt.Sprintf("%s %s — %s %s",
			snap.OwnTeamName, formatPoints(snap.OwnPoints),
			formatPoints(snap.OpponentPoints), snap.OpponentTeamName)
		if m.opts.Flashes.ScoreFlash(id) {
			parts = append(parts, styles.ScoreFlash.Render(" "+score+" "))
		} else {
			parts = append(parts, styles.Text.Render(score))
		}
	} else if status.LastError != nil {
		parts = append(parts, styles.DangerText.Render("no data"))
	} else {
		parts = append(parts, styles.MutedText.Render("waiting for first poll"))
	}

	return strings.Join(parts, "  ")
}

// renderMatchup renders the expanded tile body: both starting lineups, bench
// count, projections, and for featured tiles the game context line.
func (m Model) renderMatchup(snap state.MatchupSnapshot, styles Styles, featured bool) string {
	flashing := m.opts.Flashes.PlayerFlash(snap.LeagueID)

	var b strings.Builder
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s  proj %s",
		snap.OwnTeamName, formatPoints(snap.OwnProjected))))
	b.WriteString("\n")
	b.WriteString(m.renderStarters(snap.OwnStarters, snap.OwnPlayerPoints, flashing, styles))

	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s  proj %s",
		snap.OpponentTeamName, formatPoints(snap.OpponentProjected))))
	b.WriteString("\n")
	b.WriteString(m.renderStarters(snap.OpponentStarters, snap.OpponentPlayerPoints, flashing, styles))

	if n := len(snap.Bench); n > 0 {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("bench %d", n)))
		b.WriteString("\n")
	}

	if featured {
		if line := m.renderGameContext(snap, styles); line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStarters(starters []string, points map[string]float64, flashing map[string]bool, styles Styles) string {
	var b strings.Builder
	for _, pid := range starters {
		name := m.opts.Players.Name(pid)
		line := fmt.Sprintf("  %-38s %8s", truncate(name, 38), formatPoints(points[pid]))
		if note := m.gameNote(pid); note != "" {
			line += "  " + styles.FaintText.Render(note)
		}
		if flashing[pid] {
			b.WriteString(styles.PlayerFlash.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// gameNote returns the player's NFL game status: kickoff time before the
// game, LIVE during, FINAL after. Empty when the player or game is unknown.
func (m Model) gameNote(playerID string) string {
	team := m.opts.Players[playerID].Team
	if team == "" {
		return ""
	}
	game, ok := m.opts.Games.Games[team]
	if !ok {
		return ""
	}
	switch game.Status {
	case espn.StatusPre:
		if game.Kickoff.IsZero() {
			return "pregame"
		}
		return game.Kickoff.Local().Format("Mon 3:04PM")
	case espn.StatusPost:
		return "FINAL"
	default:
		return "LIVE"
	}
}

// renderGameContext builds the odds and weather line for a featured tile,
// using the first starter whose game is known.
func (m Model) renderGameContext(snap state.MatchupSnapshot, styles Styles) string {
	for _, pid := range snap.OwnStarters {
		team := m.opts.Players[pid].Team
		if team == "" {
			continue
		}
		game, ok := m.opts.Games.Games[team]
		if !ok {
			continue
		}

		var parts []string
		if line, ok := m.opts.Games.Lines[team]; ok {
			parts = append(parts, fmt.Sprintf("%s %+.1f  o/u %.1f", team, line.Spread, line.Total))
		}
		if cond, ok := m.opts.Games.Weather[game.ID]; ok {
			parts = append(parts, fmt.Sprintf("%.0f°C wind %.0fkph %s", cond.TempC, cond.WindKph, cond.Description))
		}
		if game.Venue != nil {
			parts = append(parts, game.Venue.Name)
		}
		if len(parts) == 0 {
			return ""
		}
		return styles.FaintText.Render(strings.Join(parts, " · "))
	}
	return ""
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	rows := []struct{ key, desc string }{
		{"j / down", "Select next league"},
		{"k / up", "Select previous league"},
		{"J / shift+down", "Move selected league down"},
		{"K / shift+up", "Move selected league up"},
		{"1, 2", "Pin selected league to a featured slot"},
		{"0", "Remove selected league from featured"},
		{"enter / space", "Collapse or expand selected league"},
		{"r", "Poll immediately"},
		{"p", "Pause or resume polling"},
		{"T", "Cycle theme"},
		{"q / ctrl+c", "Quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("gameday keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.AccentText.Render(fmt.Sprintf("%-16s", row.key)),
			styles.Text.Render(row.desc)))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("press any key to close"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
