package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"coworkers/internal/draft"
)

func (a *App) editCmd() *cobra.Command {
	var (
		name        string
		description string
		done        bool
	)

	cmd := &cobra.Command{
		Use:   "edit [task-id]",
		Short: "Edit a task's name or description",
		Long: `Edit the name or description of an existing task.

The task's recurring schedule cannot be changed here; resubmitting
unchanged fields is reported and skipped.`,
		Example: `  coworkers edit 99 --name="회의록 작성"
  coworkers edit 99 --desc="수요일까지" --done`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireBackend(); err != nil {
				return err
			}

			var taskID int64
			if _, err := fmt.Sscanf(args[0], "%d", &taskID); err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			ctx := context.Background()
			original, err := a.client().GetTask(ctx, a.config.Group.GroupID, a.config.Group.TaskListID, taskID)
			if err != nil {
				return fmt.Errorf("fetching task: %w", err)
			}

			store := draft.NewStoreForTask(original, time.Now())
			if cmd.Flags().Changed("name") {
				store.SetName(name)
			}
			if cmd.Flags().Changed("desc") {
				store.SetDescription(description)
			}

			cache, err := a.openCache()
			if err != nil {
				return err
			}

			target := draft.Target{
				GroupID:    a.config.Group.GroupID,
				TaskListID: a.config.Group.TaskListID,
				Done:       done || original.Done,
			}
			ctl := draft.NewController(store, target, a.client(), termNotifier{}, noopOverlay{}, a.revalidator(cache))

			switch outcome := ctl.Submit(ctx); outcome {
			case draft.OutcomeUpdated:
				fmt.Printf("할 일 수정됨: #%d %s\n", original.ID, store.Draft().Name)
				return nil
			case draft.OutcomeNoChange:
				return nil // the controller already reported it
			case draft.OutcomeBlocked:
				return validationError(store.Validate())
			default:
				return fmt.Errorf("updating task failed")
			}
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New task name")
	cmd.Flags().StringVar(&description, "desc", "", "New task description")
	cmd.Flags().BoolVar(&done, "done", false, "Mark the task as done")

	return cmd
}
