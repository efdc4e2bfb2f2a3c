package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"treasury/internal/capture"
	"treasury/internal/engine"
	"treasury/internal/ui"
)

func newSubmitCmd() *cobra.Command {
	var (
		book       string
		duration   int
		videoRef   string
		audioRef   string
		capVideo   bool
		record     bool
		sentence   string
		translated string
	)

	cmd := &cobra.Command{
		Use:   "submit <task-id>",
		Short: "Submit a quest for parent review",
		Long: `Submit a quest for parent review.

Reading quests need a video/photo proof reference (--video, or --capture to
simulate one). English quests need an audio recording (--audio, or --record
to simulate one); the practice sentence is generated when not supplied.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task-id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if capVideo && videoRef == "" {
				videoRef = capture.NewVideoRef()
			}
			if record && audioRef == "" {
				audioRef = capture.NewAudioRef()
			}

			st, err := svc.Submit(ctx, engine.SubmitInput{
				TaskID:   args[0],
				BookName: book,
				Duration: duration,
				VideoRef: videoRef,
				Sentence: engine.SentencePair{Sentence: sentence, Translation: translated},
				AudioRef: audioRef,
			})
			if err != nil {
				return err
			}

			t, _ := st.TaskByID(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconClock+" Submitted"), t.Title, ui.Muted.Render("(waiting for parent review)"))
			if t.Kind == engine.KindEnglish && t.English != nil && t.English.Sentence != "" {
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Sentence:"), fmt.Sprintf("%q — %s", t.English.Sentence, t.English.Translation))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&book, "book", "b", "", "Book name (reading)")
	cmd.Flags().IntVarP(&duration, "duration", "d", engine.DefaultReadingMinutes, "Reading minutes (15|30|45)")
	cmd.Flags().StringVar(&videoRef, "video", "", "Video/photo proof reference (reading)")
	cmd.Flags().BoolVar(&capVideo, "capture", false, "Simulate a camera capture (reading)")
	cmd.Flags().StringVar(&audioRef, "audio", "", "Audio recording reference (english)")
	cmd.Flags().BoolVar(&record, "record", false, "Simulate a microphone recording (english)")
	cmd.Flags().StringVar(&sentence, "sentence", "", "Practice sentence (english, generated when empty)")
	cmd.Flags().StringVar(&translated, "translation", "", "Practice sentence translation (english)")

	return cmd
}
