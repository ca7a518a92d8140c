package cli

import (
	"context"
	"fmt"

	"github.com/haeun-dev/maumdiary/internal/diary"
)

// emotionGlyphs renders the closed enumeration; anything else (an old or
// hand-edited snapshot) falls back to the default glyph.
var emotionGlyphs = map[diary.Emotion]string{
	diary.EmotionHappy:  "😊",
	diary.EmotionSad:    "😢",
	diary.EmotionNormal: "😐",
	diary.EmotionFire:   "🔥",
}

func glyph(e diary.Emotion) string {
	if g, ok := emotionGlyphs[e]; ok {
		return g
	}
	return "😊"
}

// promptEmotion asks for one of the known emotions; an empty answer
// defaults to happy, matching the original form's preselection.
func (a *App) promptEmotion() (diary.Emotion, error) {
	answer, err := GetSimpleText(a.reader, "How did today feel? (happy/sad/normal/fire)", a.out)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return diary.EmotionHappy, nil
	}

	emotion := diary.Emotion(answer)
	if err := ValidateEmotion(emotion); err != nil {
		fmt.Fprintln(a.out, err)
		return "", err
	}
	return emotion, nil
}

func (a *App) Write(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	emotion, err := a.promptEmotion()
	if err != nil {
		return err
	}

	content, err := GetSimpleText(a.reader, "How was your day? (100 characters or less)", a.out)
	if err != nil {
		return err
	}
	if err := ValidateContent(content); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	entry, err := a.diaries.Add(ctx, sess.ID, content, emotion)
	if err != nil {
		// the entry is in memory; only durability was lost
		fmt.Fprintln(a.out, "Saved in memory, but writing to disk failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Saved %s %s (entry %d)\n", entry.Date, glyph(entry.Emotion), entry.ID)
	return nil
}
