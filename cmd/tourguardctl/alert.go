package main

import (
	"fmt"
	"io"

	"tourguard/internal/domain/entity"
	"tourguard/internal/infra/notification"
	"tourguard/internal/infra/persistence/postgres"
	"tourguard/internal/infra/pubsub"
	"tourguard/internal/usecase"
	"tourguard/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Operate on authority alerts",
}

var alertRetryCmd = &cobra.Command{
	Use:   "retry <alert-id>",
	Short: "Re-send a failed alert",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlertRetry,
}

func init() {
	alertCmd.AddCommand(alertRetryCmd)
}

func runAlertRetry(cmd *cobra.Command, args []string) error {
	alertID, err := uuid.Parse(args[0])
	if err != nil {
		return errors.Wrap(err, "invalid alert id")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	var alerts usecase.AlertUsecase
	stop, err := startApp(ctx, fx.Options(
		fx.Provide(
			postgres.NewAlertRepository,
			impl.NewAlertDispatcher,
		),
		pubsub.Module,
		notification.Module,
	), &alerts)
	if err != nil {
		return err
	}
	defer stop()

	alert, err := alerts.Retry(ctx, alertID)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), alert, func(w io.Writer) {
		fmt.Fprintf(w, "alert %s is %s after %d attempts\n", alert.ID, alert.Status, alert.Attempts)
		if alert.Status == entity.AlertStatusFailed && alert.Detail != "" {
			fmt.Fprintf(w, "detail: %s\n", alert.Detail)
		}
	})
}
