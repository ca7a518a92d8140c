package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/haeun-dev/maumdiary/internal/diary"
)

// printEntries renders entries newest first. Ordering is a display
// concern; the store hands entries back in insertion order.
func (a *App) printEntries(entries []diary.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries yet.")
		return
	}

	sorted := append([]diary.Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	for _, e := range sorted {
		fmt.Fprintf(a.out, "%d  %s  %s  %s\n", e.ID, e.Date, glyph(e.Emotion), e.Content)
	}
}

func (a *App) List(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}
	a.printEntries(a.diaries.ForOwner(sess.ID))
	return nil
}

func (a *App) Search(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	keyword, err := GetSimpleText(a.reader, "Keyword (empty shows everything)", a.out)
	if err != nil {
		return err
	}
	a.printEntries(a.diaries.Search(sess.ID, keyword))
	return nil
}

func (a *App) Filter(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	emotion, err := a.promptEmotion()
	if err != nil {
		return err
	}
	a.printEntries(a.diaries.ByEmotion(sess.ID, emotion))
	return nil
}
