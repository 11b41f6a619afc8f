package cli

import (
	"github.com/spf13/cobra"

	"github.com/studycare/studycare-client/internal/core/domain"
)

func (c *CLI) teacherCommand() *cobra.Command {
	teacher := &cobra.Command{
		Use:   "teacher",
		Short: "Teacher dashboard: classes and rosters",
	}

	classes := &cobra.Command{
		Use:   "classes",
		Short: "List your classes",
		Args:  cobra.NoArgs,
		RunE: c.guarded(domain.RoleTeacher, func(cmd *cobra.Command, _ []string) error {
			classes, err := c.app.Teacher.Load(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(classes)
		}),
	}

	var subject string
	create := &cobra.Command{
		Use:   "create-class NAME",
		Short: "Create a class",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(domain.RoleTeacher, func(cmd *cobra.Command, args []string) error {
			class, err := c.app.Teacher.CreateClass(cmd.Context(), args[0], subject)
			if err != nil {
				return err
			}
			return c.print(class)
		}),
	}
	create.Flags().StringVar(&subject, "subject", "", "class subject")

	class := &cobra.Command{
		Use:   "class CLASS_ID",
		Short: "Show a class roster with activity stats",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(domain.RoleTeacher, func(cmd *cobra.Command, args []string) error {
			details, err := c.app.Teacher.SelectClass(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(details)
		}),
	}

	students := &cobra.Command{
		Use:   "students CLASS_ID",
		Short: "List the students enrolled in a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Teacher.ClassStudents(cmd.Context(), args[0]))
		},
	}

	stats := &cobra.Command{
		Use:   "stats CLASS_ID",
		Short: "Show per-student activity for a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c, c.app.API.Teacher.ClassStats(cmd.Context(), args[0]))
		},
	}

	teacher.AddCommand(classes, create, class, students, stats)
	return teacher
}

func (c *CLI) studentCommand() *cobra.Command {
	student := &cobra.Command{
		Use:   "student",
		Short: "Student dashboard: overview and class enrollment",
	}

	overview := &cobra.Command{
		Use:   "overview",
		Short: "Load classes, chats, pods, notes and symptom history",
		Args:  cobra.NoArgs,
		RunE: c.guarded(domain.RoleStudent, func(cmd *cobra.Command, _ []string) error {
			overview, err := c.app.Student.Load(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(overview)
		}),
	}

	join := &cobra.Command{
		Use:   "join CLASS_CODE",
		Short: "Join a class by its code",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(domain.RoleStudent, func(cmd *cobra.Command, args []string) error {
			enrollment, err := c.app.Student.JoinClass(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(enrollment)
		}),
	}

	classes := &cobra.Command{
		Use:   "classes",
		Short: "List the classes you are enrolled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(c, c.app.API.Student.Classes(cmd.Context()))
		},
	}

	student.AddCommand(overview, join, classes)
	return student
}

func (c *CLI) caregiverCommand() *cobra.Command {
	caregiver := &cobra.Command{
		Use:   "caregiver",
		Short: "Caregiver dashboard: linked children and their activity",
	}

	children := &cobra.Command{
		Use:   "children",
		Short: "List linked children",
		Args:  cobra.NoArgs,
		RunE: c.guarded(domain.RoleCaregiver, func(cmd *cobra.Command, _ []string) error {
			children, err := c.app.Caregiver.Load(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(children)
		}),
	}

	link := &cobra.Command{
		Use:   "link CHILD_EMAIL",
		Short: "Link a student account",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(domain.RoleCaregiver, func(cmd *cobra.Command, args []string) error {
			child, err := c.app.Caregiver.LinkChild(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(child)
		}),
	}

	activity := &cobra.Command{
		Use:   "activity CHILD_ID",
		Short: "Show a child's recent activity",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(domain.RoleCaregiver, func(cmd *cobra.Command, args []string) error {
			activity, err := c.app.Caregiver.SelectChild(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(activity)
		}),
	}

	unlink := &cobra.Command{
		Use:   "unlink CHILD_ID",
		Short: "Remove a linked child",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(domain.RoleCaregiver, func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Caregiver.UnlinkChild(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(result)
		}),
	}

	caregiver.AddCommand(children, link, activity, unlink)
	return caregiver
}
