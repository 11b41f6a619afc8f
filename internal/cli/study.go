package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studycare/studycare-client/internal/core/domain"
)

func (c *CLI) chatCommand() *cobra.Command {
	chat := &cobra.Command{
		Use:   "chat",
		Short: "AI tutor chat sessions",
	}

	var subject string
	create := &cobra.Command{
		Use:   "new",
		Short: "Start a chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.app.Student.CreateChatSession(cmd.Context(), subject)
			if err != nil {
				return err
			}
			return c.print(session)
		},
	}
	create.Flags().StringVar(&subject, "subject", "", "session subject")

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List chat sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(c, c.app.API.Chat.Sessions(cmd.Context()))
		},
	}

	show := &cobra.Command{
		Use:   "show SESSION_ID",
		Short: "Show a session with its messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Chat.Session(cmd.Context(), args[0]))
		},
	}

	send := &cobra.Command{
		Use:   "send SESSION_ID MESSAGE...",
		Short: "Send a message and print the updated transcript",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := c.app.Student.SendChatMessage(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return c.print(messages)
		},
	}

	del := &cobra.Command{
		Use:   "delete SESSION_ID",
		Short: "Delete a chat session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Chat.DeleteSession(cmd.Context(), args[0]))
		},
	}

	chat.AddCommand(create, sessions, show, send, del)
	return chat
}

func (c *CLI) podsCommand() *cobra.Command {
	pods := &cobra.Command{
		Use:   "pods",
		Short: "Study pods",
	}

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a study pod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pod, err := c.app.Student.CreatePod(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(pod)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List study pods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(c, c.app.API.Pods.List(cmd.Context()))
		},
	}

	show := &cobra.Command{
		Use:   "show POD_ID",
		Short: "Show a pod with its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Pods.Get(cmd.Context(), args[0]))
		},
	}

	join := &cobra.Command{
		Use:   "join POD_ID",
		Short: "Join a pod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := c.app.Student.JoinPod(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(member)
		},
	}

	leave := &cobra.Command{
		Use:   "leave POD_ID",
		Short: "Leave a pod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Pods.Leave(cmd.Context(), args[0]))
		},
	}

	send := &cobra.Command{
		Use:   "send POD_ID CONTENT...",
		Short: "Post a message to a pod",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := c.app.Student.SendPodMessage(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return c.print(message)
		},
	}

	var limit int
	messages := &cobra.Command{
		Use:   "messages POD_ID",
		Short: "List pod messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Pods.Messages(cmd.Context(), args[0], limit))
		},
	}
	messages.Flags().IntVar(&limit, "limit", 0, "most recent messages to return, 0 for the server default")

	del := &cobra.Command{
		Use:   "delete POD_ID",
		Short: "Delete a pod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Pods.Delete(cmd.Context(), args[0]))
		},
	}

	pods.AddCommand(create, list, show, join, leave, send, messages, del)
	return pods
}

func (c *CLI) notesCommand() *cobra.Command {
	notes := &cobra.Command{
		Use:   "notes",
		Short: "Notes and the note assistants",
	}

	var fields struct {
		title, content string
		tags           []string
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			note, err := c.app.Student.CreateNote(cmd.Context(), domain.CreateNoteRequest{
				Title:   fields.title,
				Content: fields.content,
				Tags:    fields.tags,
			})
			if err != nil {
				return err
			}
			return c.print(note)
		},
	}

	update := &cobra.Command{
		Use:   "update NOTE_ID",
		Short: "Edit a note; omitted fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := c.app.Student.UpdateNote(cmd.Context(), args[0], domain.UpdateNoteRequest{
				Title:   fields.title,
				Content: fields.content,
				Tags:    fields.tags,
			})
			if err != nil {
				return err
			}
			return c.print(note)
		},
	}

	for _, cmd := range []*cobra.Command{create, update} {
		cmd.Flags().StringVar(&fields.title, "title", "", "note title")
		cmd.Flags().StringVar(&fields.content, "content", "", "note body")
		cmd.Flags().StringSliceVar(&fields.tags, "tag", nil, "tag, repeatable")
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(c, c.app.API.Notes.List(cmd.Context()))
		},
	}

	show := &cobra.Command{
		Use:   "show NOTE_ID",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Notes.Get(cmd.Context(), args[0]))
		},
	}

	del := &cobra.Command{
		Use:   "delete NOTE_ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Student.DeleteNote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(result)
		},
	}

	notes.AddCommand(create, update, list, show, del)
	notes.AddCommand(
		c.noteAssistant("summarize", "Summarize a note", func(ctx context.Context, noteID string) (any, error) {
			return c.app.Student.SummarizeNote(ctx, noteID)
		}),
		c.noteAssistant("explain", "Explain the concepts in a note", func(ctx context.Context, noteID string) (any, error) {
			return c.app.Student.ExplainNote(ctx, noteID)
		}),
		c.noteAssistant("organize", "Restructure a note", func(ctx context.Context, noteID string) (any, error) {
			return c.app.Student.OrganizeNote(ctx, noteID)
		}),
	)
	return notes
}

// noteAssistant runs one of the assistants on the note named on the command
// line.
func (c *CLI) noteAssistant(name, short string, run func(ctx context.Context, noteID string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " NOTE_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
}

func (c *CLI) symptomCommand() *cobra.Command {
	symptom := &cobra.Command{
		Use:   "symptom",
		Short: "Educational symptom checker",
	}

	var info string
	check := &cobra.Command{
		Use:   "check SYMPTOMS...",
		Short: "Describe symptoms and get general guidance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guidance, err := c.app.Student.CheckSymptoms(cmd.Context(), domain.SymptomCheckRequest{
				Symptoms:       strings.Join(args, " "),
				AdditionalInfo: info,
			})
			if err != nil {
				return err
			}
			return c.print(guidance)
		},
	}
	check.Flags().StringVar(&info, "info", "", "additional context")

	history := &cobra.Command{
		Use:   "history",
		Short: "List earlier symptom checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(c, c.app.API.Symptom.History(cmd.Context()))
		},
	}

	symptom.AddCommand(check, history)
	return symptom
}
