package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/deathgame/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	tuningDoc, err := generateTuningDoc(game.DefaultTuning())
	if err != nil {
		fatal(err)
	}
	files := []docFile{
		generateEncountersDoc(),
		generateDailyEventsDoc(),
		generateMishapsDoc(),
		tuningDoc,
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateEncountersDoc() docFile {
	items := game.EncounterCatalog()
	sort.Slice(items, func(i, j int) bool {
		return items[i].Kind < items[j].Kind
	})

	var b strings.Builder
	b.WriteString("# Encounters\n\n")
	b.WriteString("Source: `internal/game/events.go` (`EncounterCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total encounters: **%d**. Each has exactly four choices; outcomes live in `internal/game/resolve.go`.\n\n", len(items)))
	b.WriteString("| Kind | Title | Description | Choices |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, e := range items {
		choices := make([]string, 0, len(e.Choices))
		for i, c := range e.Choices {
			choices = append(choices, fmt.Sprintf("%d. `%s` %s", i+1, c.ID, c.Text))
		}
		b.WriteString("| ")
		b.WriteString(escape(string(e.Kind)))
		b.WriteString(" | ")
		b.WriteString(escape(e.Title))
		b.WriteString(" | ")
		b.WriteString(escape(e.Description))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(choices, "\n")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "encounters.md", Title: "Encounters", Content: b.String()}
}

func generateDailyEventsDoc() docFile {
	items := game.DailyEventCatalog()
	tuning := game.DefaultTuning()

	var b strings.Builder
	b.WriteString("# Daily Events\n\n")
	b.WriteString("Source: `internal/game/events.go` (`DailyEventCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Rolled once per day change at 1 in %d, then drawn uniformly.\n\n", tuning.DailyEventOdds))
	b.WriteString("| Text | Kind |\n")
	b.WriteString("| --- | --- |\n")
	for _, d := range items {
		b.WriteString("| ")
		b.WriteString(escape(d.Text))
		b.WriteString(" | ")
		b.WriteString(escape(string(d.Kind)))
		b.WriteString(" |\n")
	}

	return docFile{Name: "daily-events.md", Title: "Daily Events", Content: b.String()}
}

func generateMishapsDoc() docFile {
	items := game.MishapCatalog()
	sort.Slice(items, func(i, j int) bool {
		return items[i].Kind < items[j].Kind
	})

	var b strings.Builder
	b.WriteString("# Mishaps\n\n")
	b.WriteString("Source: `internal/game/mishaps.go` (`MishapCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total mishaps: **%d**.\n\n", len(items)))
	b.WriteString("| Kind | Title | Description | Prevented By |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, m := range items {
		prevent := "-"
		if m.PreventWith != "" {
			prevent = fmt.Sprintf("%d %s", m.PreventAmount, m.PreventWith)
		}
		b.WriteString("| ")
		b.WriteString(escape(string(m.Kind)))
		b.WriteString(" | ")
		b.WriteString(escape(m.Title))
		b.WriteString(" | ")
		b.WriteString(escape(m.Description))
		b.WriteString(" | ")
		b.WriteString(escape(prevent))
		b.WriteString(" |\n")
	}

	return docFile{Name: "mishaps.md", Title: "Mishaps", Content: b.String()}
}

func generateTuningDoc(t game.Tuning) (docFile, error) {
	data, err := game.MarshalTuning(t)
	if err != nil {
		return docFile{}, fmt.Errorf("marshal tuning: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Default Tuning\n\n")
	b.WriteString("Source: `internal/game/config.go` (`DefaultTuning`).\n\n")
	b.WriteString("Pass a file with any subset of these keys to `deathgame -tuning`; missing keys keep their defaults.\n\n")
	b.WriteString("| Resource | Start | Cap |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, r := range game.AllResources() {
		b.WriteString(fmt.Sprintf("| %s | %d | %d |\n", r, t.Start.Inventory.Get(r), t.Caps.Get(r)))
	}
	b.WriteString("\n```yaml\n")
	b.Write(data)
	b.WriteString("```\n")

	return docFile{Name: "tuning.md", Title: "Tuning", Content: b.String()}, nil
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
