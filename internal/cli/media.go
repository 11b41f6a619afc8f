package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/queue"
)

// voiceConversationKey keys voice turns that start a new conversation, so
// they all land on one worker and run in order.
const voiceConversationKey = "voice:new"

type uploadOutcome struct {
	File   string `json:"file"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// uploadAll runs one job per file through the upload queue and prints the
// outcomes in argument order. key maps a file to its ordering key.
func (c *CLI) uploadAll(ctx context.Context, kind string, files []string, key func(file string) string, upload func(ctx context.Context, name string, r io.Reader) (any, error)) error {
	processor := queue.ProcessorFunc(func(ctx context.Context, job queue.Job) (any, error) {
		f, err := job.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return upload(ctx, job.Name, f)
	})

	d := queue.NewDispatcher(c.app.Config.UploadWorkers, processor, c.logger())
	d.Start(ctx)
	for _, file := range files {
		path := file
		err := d.Enqueue(queue.Job{
			Key:  key(path),
			Kind: kind,
			Name: filepath.Base(path),
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
		if err != nil {
			d.Wait()
			return err
		}
	}

	results := d.Wait()
	outcomes := make([]uploadOutcome, len(results))
	failed := 0
	for i, res := range results {
		if res.Err != nil {
			outcomes[i] = uploadOutcome{File: files[i], Error: res.Err.Error()}
			failed++
			continue
		}
		outcomes[i] = uploadOutcome{File: files[i], Result: res.Output}
	}
	if err := c.print(outcomes); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(files))
	}
	return nil
}

func (c *CLI) imageCommand() *cobra.Command {
	image := &cobra.Command{
		Use:   "image",
		Short: "Image homework help",
	}

	upload := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload one or more images for explanation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.uploadAll(cmd.Context(), queue.KindImage, args,
				func(file string) string { return file },
				func(ctx context.Context, name string, r io.Reader) (any, error) {
					return c.app.Student.UploadImage(ctx, name, r)
				})
		},
	}

	show := &cobra.Command{
		Use:   "show SESSION_ID",
		Short: "Show the analysis of an uploaded image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Image.Analysis(cmd.Context(), args[0]))
		},
	}

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List image sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(c, c.app.API.Image.Sessions(cmd.Context()))
		},
	}

	ask := &cobra.Command{
		Use:   "ask SESSION_ID QUESTION...",
		Short: "Ask a follow-up question about an image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args[1:], " "))
			if question == "" {
				return fmt.Errorf("%w: question is required", domain.ErrInvalidInput)
			}
			return emit(c, c.app.API.Image.Ask(cmd.Context(), args[0], question))
		},
	}

	del := &cobra.Command{
		Use:   "delete SESSION_ID",
		Short: "Delete an image session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Image.Delete(cmd.Context(), args[0]))
		},
	}

	image.AddCommand(upload, show, sessions, ask, del)
	return image
}

func (c *CLI) voiceCommand() *cobra.Command {
	voice := &cobra.Command{
		Use:   "voice",
		Short: "Voice tutor",
	}

	var transcribeSession string
	transcribe := &cobra.Command{
		Use:   "transcribe FILE",
		Short: "Transcribe an audio clip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return emit(c, c.app.API.Voice.Transcribe(cmd.Context(), filepath.Base(args[0]), f, transcribeSession))
		},
	}
	transcribe.Flags().StringVar(&transcribeSession, "session", "", "voice session to attach the clip to")

	var synth domain.SynthesizeRequest
	synthesize := &cobra.Command{
		Use:   "synthesize TEXT...",
		Short: "Turn text into speech and print the audio URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := synth
			req.Text = strings.Join(args, " ")
			return emit(c, c.app.API.Voice.Synthesize(cmd.Context(), req))
		},
	}
	synthesize.Flags().StringVar(&synth.Language, "language", "", "speech language code")
	synthesize.Flags().StringVar(&synth.SessionID, "session", "", "voice session")

	var chatLanguage, chatSession string
	chat := &cobra.Command{
		Use:   "chat FILE...",
		Short: "Talk to the tutor; several clips are sent as consecutive turns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := voiceConversationKey
			if chatSession != "" {
				c.app.Student.ResumeVoiceSession(chatSession)
				key = chatSession
			}
			return c.uploadAll(cmd.Context(), queue.KindVoice, args,
				func(string) string { return key },
				func(ctx context.Context, name string, r io.Reader) (any, error) {
					return c.app.Student.VoiceChat(ctx, name, r, chatLanguage)
				})
		},
	}
	chat.Flags().StringVar(&chatLanguage, "language", "", "spoken language code (default en)")
	chat.Flags().StringVar(&chatSession, "session", "", "continue an earlier voice session")

	voice.AddCommand(transcribe, synthesize, chat)
	return voice
}
