package services

import "go.uber.org/zap"

// Notifier is the fire-and-forget success-toast sink. Every successful
// mutation emits exactly one message through it.
type Notifier interface {
	Success(message string)
}

type zapNotifier struct {
	log *zap.Logger
}

func NewZapNotifier(log *zap.Logger) Notifier {
	return &zapNotifier{log: log}
}

func (n *zapNotifier) Success(message string) {
	n.log.Info("notification",
		zap.String("kind", "success"),
		zap.String("message", message),
	)
}
