package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/haeun-dev/maumdiary/internal/diary"
)

// promptOwnEntry asks for an entry id and resolves it, refusing entries
// that belong to someone else. The stores themselves do not check
// ownership; that is this layer's job.
func (a *App) promptOwnEntry(ownerID int64) (diary.Entry, bool, error) {
	raw, err := GetSimpleText(a.reader, "Entry id", a.out)
	if err != nil {
		return diary.Entry{}, false, err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Entry ids are numbers.")
		return diary.Entry{}, false, nil
	}

	entry, ok := a.diaries.Get(id)
	if !ok || entry.OwnerID != ownerID {
		fmt.Fprintln(a.out, "No such entry.")
		return diary.Entry{}, false, nil
	}
	return entry, true, nil
}

func (a *App) Show(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	entry, ok, err := a.promptOwnEntry(sess.ID)
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(a.out, "%s  %s\n", entry.Date, glyph(entry.Emotion))
	fmt.Fprintln(a.out, entry.Content)
	fmt.Fprintf(a.out, "written %s", entry.CreatedAt.Format("2006-01-02 15:04"))
	if !entry.UpdatedAt.Equal(entry.CreatedAt) {
		fmt.Fprintf(a.out, ", edited %s", entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	entry, ok, err := a.promptOwnEntry(sess.ID)
	if err != nil || !ok {
		return err
	}

	emotion, err := a.promptEmotion()
	if err != nil {
		return err
	}

	content, err := GetSimpleText(a.reader, "New content (100 characters or less)", a.out)
	if err != nil {
		return err
	}
	if err := ValidateContent(content); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.diaries.Update(ctx, entry.ID, content, emotion); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Updated.")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	entry, ok, err := a.promptOwnEntry(sess.ID)
	if err != nil || !ok {
		return err
	}

	confirmed, err := GetConfirm(a.reader, "Really delete this entry?", a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if err := a.diaries.Delete(ctx, entry.ID); err != nil {
		fmt.Fprintln(a.out, "Delete failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
