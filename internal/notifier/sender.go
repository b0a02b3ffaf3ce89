package notifier

import (
	"context"

	"domainwatch/pkg/logger"

	"go.uber.org/zap"
)

// LogSender is a Sender that writes notifications to the structured log
// instead of delivering them. It is the default sender in environments where
// no mail transport is configured.
type LogSender struct{}

// Send implements Sender.
func (LogSender) Send(ctx context.Context, n Notification) error {
	logger.Info(ctx, "notification",
		zap.String("recipient", n.Recipient),
		zap.String("template", n.Template),
		zap.Any("context", n.Context))

	return nil
}
