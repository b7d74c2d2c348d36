package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dmitrymomot/clubledger/pkg/billing"
	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/logger"
	"github.com/dmitrymomot/clubledger/pkg/paystatus"
)

func runComplete(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	taskID := fs.String("task", "", "payment task id")
	at := fs.String("at", "", "completion date, YYYY-MM-DD (default now)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *taskID == "" {
		return fmt.Errorf("%w: -task", ErrMissingFlag)
	}

	completedAt := a.now().UTC()
	if *at != "" {
		d, ok := club.ParseDay(*at)
		if !ok {
			return fmt.Errorf("invalid -at date %q", *at)
		}
		completedAt = d
	}

	client, err := completePayment(ctx, a, *taskID, completedAt)
	if err != nil {
		return err
	}
	return writeJSON(a.out, client)
}

// completePayment marks the task done, advances the client's subscription
// and re-derives its payment status. The task is saved first so a failed
// client save can be retried by completing the task again.
func completePayment(ctx context.Context, a *app, taskID string, completedAt time.Time) (club.Client, error) {
	task, err := a.store.Tasks.Get(ctx, taskID)
	if err != nil {
		return club.Client{}, fmt.Errorf("task %s: %w", taskID, err)
	}
	if task.Topic != club.TopicPayment || task.ClientID == "" {
		return club.Client{}, fmt.Errorf("%w: %s", ErrNotPaymentTask, taskID)
	}
	if task.Done {
		return club.Client{}, fmt.Errorf("%w: %s", ErrTaskDone, taskID)
	}

	client, err := a.store.Clients.Get(ctx, task.ClientID)
	if err != nil {
		return club.Client{}, fmt.Errorf("client %s: %w", task.ClientID, err)
	}
	slots, err := a.store.Schedule.List(ctx)
	if err != nil {
		return club.Client{}, err
	}

	update := billing.ResolvePaymentCompletion(billing.CompletionInput{
		Client:      client,
		Task:        task,
		Schedule:    slots,
		CompletedAt: completedAt,
	}, billing.WithManualLessonsIncrement(a.cfg.ManualLessonsIncrement))
	client = update.Apply(client)

	task.Done = true
	task.DoneAt = club.FormatISO(completedAt)
	if _, err := a.store.Tasks.Put(ctx, task); err != nil {
		return club.Client{}, fmt.Errorf("save task %s: %w", task.ID, err)
	}

	tasks, err := a.store.Tasks.List(ctx)
	if err != nil {
		return club.Client{}, err
	}
	client, _ = paystatus.Reconcile(client, tasks, completedAt)

	saved, err := a.store.Clients.Put(ctx, client)
	if err != nil {
		return club.Client{}, fmt.Errorf("save client %s: %w", client.ID, err)
	}

	attrs := []any{
		logger.ClientID(saved.ID),
		logger.Area(task.Area),
		logger.TrainingGroup(task.Group),
	}
	if update.Anchor != nil {
		attrs = append(attrs, "paid_at", update.Anchor.PaidAt)
	}
	a.log.InfoContext(ctx, "payment completed", attrs...)
	return saved, nil
}
